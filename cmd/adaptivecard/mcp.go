package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	adaptivecardbuilder "github.com/ku222/AdaptiveCardBuilder"
	"github.com/ku222/AdaptiveCardBuilder/internal/logging"
	"github.com/ku222/AdaptiveCardBuilder/pkg/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the card builder as an MCP server over stdio, so AI agents can
render and translate Adaptive Cards as tools.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := logging.New(slog.LevelInfo)
		slog.SetDefault(logger)

		srv := mcp.NewServer(adaptivecardbuilder.Version, newTranslator(cmd))

		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)
		slog.Info("Starting AdaptiveCard MCP server (stdio)")
		if err := srv.ServeStdio(); err != nil {
			slog.Error("MCP server execution failed", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
