package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ku222/AdaptiveCardBuilder/internal/cardfile"
	"github.com/ku222/AdaptiveCardBuilder/internal/presentation/tui"
)

var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Preview a card definition in the terminal",
	Long:  `Builds the card and renders an approximate preview as styled text, so a definition can be checked without a chat client.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Printf("Error reading definition: %v\n", err)
			os.Exit(1)
		}
		def, err := cardfile.Parse(data)
		if err != nil {
			fmt.Printf("Error parsing definition: %v\n", err)
			os.Exit(1)
		}
		c, err := def.Build()
		if err != nil {
			fmt.Printf("Error building card: %v\n", err)
			os.Exit(1)
		}

		// Styled output only makes sense on a real terminal; piped output
		// gets the plain markdown.
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Println(tui.Markdown(c))
			return
		}

		tui.PrintBanner()
		render := tui.NewRenderer()
		out, err := render(c)
		if err != nil {
			fmt.Printf("Error rendering preview: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(out)
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
