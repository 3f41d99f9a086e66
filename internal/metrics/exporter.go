package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Exporter serves /metrics over net/http, separately from the request loop.
type Exporter struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewExporter builds an exporter for the collectors in g.
func NewExporter(addr string, g prometheus.Gatherer, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))

	return &Exporter{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Handler returns the underlying HTTP handler.
func (e *Exporter) Handler() http.Handler {
	return e.httpServer.Handler
}

// Start blocks until the exporter stops.
func (e *Exporter) Start() error {
	e.logger.Info("metrics exporter starting", "addr", e.httpServer.Addr)
	if err := e.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics exporter: %w", err)
	}
	return nil
}

// Shutdown stops the exporter gracefully.
func (e *Exporter) Shutdown(ctx context.Context) error {
	e.logger.Info("metrics exporter shutting down")
	return e.httpServer.Shutdown(ctx)
}
