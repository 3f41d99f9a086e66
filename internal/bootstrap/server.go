package bootstrap

import (
	"log/slog"

	"github.com/creamcroissant/tinyhttpd/internal/config"
	"github.com/creamcroissant/tinyhttpd/internal/metrics"
)

// NewMetricsExporter returns nil when metrics are disabled.
func NewMetricsExporter(cfg *config.Config, infra *Infrastructure, logger *slog.Logger) *metrics.Exporter {
	if !cfg.Metrics.Enabled || infra.Registry == nil {
		return nil
	}
	return metrics.NewExporter(cfg.Metrics.Addr, infra.Registry, logger)
}
