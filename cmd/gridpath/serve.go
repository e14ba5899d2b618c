package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/internal/server"
	"github.com/pdrpinto/gridpath/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the visualiser HTTP server",
	Long:  `Serves a page that steps through a search on a random grid, a JSON solve endpoint and Prometheus metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		diagonalName, _ := cmd.Flags().GetString("diagonal")
		diagonal, err := gridpath.ParseDiagonalMovement(diagonalName)
		if err != nil {
			return err
		}

		registry := prometheus.NewRegistry()
		collector, err := metrics.NewCollector(registry)
		if err != nil {
			return err
		}

		srvState := server.New(server.Config{
			Options: []gridpath.Option{
				gridpath.WithDiagonalMovement(diagonal),
				gridpath.WithObserver(collector),
				gridpath.WithObserver(gridpath.LogObserver(logger)),
			},
			Logger:   logger,
			Gatherer: registry,
		})
		defer srvState.Close()

		srv := &http.Server{
			Addr:              ":" + port,
			Handler:           srvState.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("starting gridpath server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("start shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "error", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("killing server: %w", err)
				}
			}
			logger.Info("gridpath server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("diagonal", "always", "Diagonal rule: always or no-corner-cutting")
}
