package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the CLI banner.
func PrintBanner() {
	p := termenv.ColorProfile()
	s1 := termenv.String("    _       _            _   _            ____              _").Foreground(p.Color("#818cf8"))
	s2 := termenv.String("   / \\   __| | __ _ _ __| |_(_)_   _____ / ___|__ _ _ __ __| |").Foreground(p.Color("#a78bfa"))
	s3 := termenv.String("  / _ \\ / _` |/ _` | '_ \\  _| \\ \\ / / _ \\ |   / _` | '__/ _` |").Foreground(p.Color("#c084fc"))
	s4 := termenv.String(" / ___ \\ (_| | (_| | |_) | |_| |\\ V /  __/ |__| (_| | | | (_| |").Foreground(p.Color("#e879f9"))
	s5 := termenv.String("/_/   \\_\\__,_|\\__,_| .__/ \\__|_| \\_/ \\___|\\____\\__,_|_|  \\__,_|").Foreground(p.Color("#f472b6"))
	s6 := termenv.String("                   |_|").Foreground(p.Color("#fb7185"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Println()
}
