package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/creamcroissant/tinyhttpd/internal/bootstrap"
	"github.com/creamcroissant/tinyhttpd/internal/config"
	"github.com/creamcroissant/tinyhttpd/internal/support/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(logging.Options{
		Level:     cfg.Log.SlogLevel(),
		Format:    cfg.Log.Format,
		AddSource: cfg.Log.AddSource,
	})

	infra, err := bootstrap.BuildInfrastructure(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("public path resolved", "path", infra.Handler.PublicPath())

	if exporter := bootstrap.NewMetricsExporter(cfg, infra, logger); exporter != nil {
		go func() {
			if err := exporter.Start(); err != nil {
				logger.Error("metrics exporter stopped", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := exporter.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("metrics exporter shutdown", "error", err)
			}
		}()
	}

	logger.Info("starting http server", "addr", cfg.HTTP.Addr, "buffer_size", cfg.HTTP.BufferSize)
	return infra.Server.Run(ctx, infra.Handler)
}
