package main

import (
	"fmt"

	"github.com/spf13/cobra"

	adaptivecardbuilder "github.com/ku222/AdaptiveCardBuilder"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of adaptivecard",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("adaptivecard version %s\n", adaptivecardbuilder.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
