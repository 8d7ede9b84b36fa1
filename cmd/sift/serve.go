package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/atelier-tools/sift"
	httpAdapter "github.com/atelier-tools/sift/internal/adapters/http"
	"github.com/atelier-tools/sift/pkg/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the engine in server mode, exposing the query API over HTTP
with a server-sent-events channel for progress and a /metrics endpoint.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")

		tree, err := loadTree()
		if err != nil {
			return err
		}

		metrics := observability.New(prometheus.DefaultRegisterer)
		broker := httpAdapter.NewBroker()
		engine, err := sift.New(tree,
			sift.WithPresenter(broker),
			sift.WithLogger(newLogger()),
			sift.WithPreferenceStore(newPreferenceStore()),
			sift.WithLifecycleHooks(metrics.Hooks()),
		)
		if err != nil {
			return err
		}
		if err := engine.LoadPreferences(cmd.Context()); err != nil {
			return err
		}

		handler := httpAdapter.NewHandler(engine, broker,
			httpAdapter.WithMetricsHandler(promhttp.Handler()),
		)
		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		serverErrors := make(chan error, 1)
		go func() {
			fmt.Printf("Starting Sift Server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return err
		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				if err := srv.Close(); err != nil {
					return fmt.Errorf("killing server: %w", err)
				}
			}
			fmt.Println("Sift Server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}
