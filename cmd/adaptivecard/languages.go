package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ku222/AdaptiveCardBuilder/pkg/translate"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the language codes accepted by --translate-to",
	Run: func(cmd *cobra.Command, args []string) {
		for _, code := range translate.SupportedLanguages() {
			fmt.Println(code)
		}
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
