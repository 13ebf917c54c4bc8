package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpAdapter "github.com/ku222/AdaptiveCardBuilder/internal/adapters/http"
	"github.com/ku222/AdaptiveCardBuilder/internal/logging"
	"github.com/ku222/AdaptiveCardBuilder/pkg/adapters/rediscache"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the card rendering HTTP server",
	Long: `Starts a stateless HTTP server exposing card rendering and translation
as a JSON API. With --redis-addr, translation results are cached in Redis.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		logger := logging.New(slog.LevelInfo)

		translator := newTranslator(cmd)
		if addr, _ := cmd.Flags().GetString("redis-addr"); addr != "" && translator != nil {
			translator = rediscache.New(translator, addr, "", 0, rediscache.WithLogger(logger))
		}

		handler := httpAdapter.NewHandler(translator, httpAdapter.WithLogger(logger))

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting card server on %s\n", srv.Addr)
			if translator == nil {
				fmt.Println("No translator key configured; /v1/cards/translate will respond 503")
			}
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Card server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("redis-addr", "", "Redis address for the translation cache (e.g. localhost:6379)")
}
