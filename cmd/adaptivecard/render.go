package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ku222/AdaptiveCardBuilder/internal/cardfile"
	"github.com/ku222/AdaptiveCardBuilder/pkg/translate"
)

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Render a card definition to Adaptive Card JSON",
	Long: `Reads a YAML or JSON card definition, builds the card tree and prints
the Adaptive Card JSON to stdout. With --translate-to, text fields are
translated before serialization (requires a translator key).`,
	Args: cobra.ExactArgs(1),
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

		if lang, _ := cmd.Flags().GetString("translate-to"); lang != "" {
			translator := newTranslator(cmd)
			if translator == nil {
				fmt.Println("--translate-to requires a translator key (--translator-key or AZURE_TRANSLATOR_KEY)")
				os.Exit(1)
			}
			engine := translate.New(translator)
			if err := engine.Apply(context.Background(), c, lang); err != nil {
				fmt.Printf("Error translating card: %v\n", err)
				os.Exit(1)
			}
		}

		out, err := c.MarshalJSON()
		if err != nil {
			fmt.Printf("Error serializing card: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().String("translate-to", "", "Target language code (e.g. fr, de, zh-Hans)")
}
