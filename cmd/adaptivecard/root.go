package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ku222/AdaptiveCardBuilder/pkg/adapters/azure"
	"github.com/ku222/AdaptiveCardBuilder/pkg/ports"
)

var rootCmd = &cobra.Command{
	Use:   "adaptivecard",
	Short: "adaptivecard builds, translates and serves Adaptive Cards",
	Long:  `adaptivecard turns YAML or JSON card definitions into Adaptive Card JSON, optionally translating text fields through Azure Translator.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("translator-key", "", "Azure Translator subscription key (or AZURE_TRANSLATOR_KEY)")
	rootCmd.PersistentFlags().String("translator-region", "", "Azure Translator region (or AZURE_TRANSLATOR_REGION)")
	rootCmd.PersistentFlags().String("translator-endpoint", "", "Azure Translator endpoint override")
}

// newTranslator builds the Azure client from flags and environment. Returns
// nil when no key is configured.
func newTranslator(cmd *cobra.Command) ports.Translator {
	key, _ := cmd.Flags().GetString("translator-key")
	if key == "" {
		key = os.Getenv("AZURE_TRANSLATOR_KEY")
	}
	if key == "" {
		return nil
	}

	region, _ := cmd.Flags().GetString("translator-region")
	if region == "" {
		region = os.Getenv("AZURE_TRANSLATOR_REGION")
	}

	var opts []azure.Option
	if region != "" {
		opts = append(opts, azure.WithRegion(region))
	}
	if endpoint, _ := cmd.Flags().GetString("translator-endpoint"); endpoint != "" {
		opts = append(opts, azure.WithEndpoint(endpoint))
	}
	return azure.New(key, opts...)
}
