package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/creamcroissant/tinyhttpd/internal/cache"
	"github.com/creamcroissant/tinyhttpd/internal/config"
	"github.com/creamcroissant/tinyhttpd/internal/metrics"
	"github.com/creamcroissant/tinyhttpd/internal/server"
	"github.com/creamcroissant/tinyhttpd/internal/website"
)

// Infrastructure bundles everything runServe needs.
type Infrastructure struct {
	Server   *server.Server
	Handler  *website.Handler
	Cache    cache.Store
	Metrics  *metrics.Metrics
	Registry *prometheus.Registry
}

// BuildInfrastructure wires the cache, metrics, website handler and server from cfg.
func BuildInfrastructure(cfg *config.Config, logger *slog.Logger) (*Infrastructure, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required / 配置不能为空")
	}
	if logger == nil {
		logger = slog.Default()
	}

	infra := &Infrastructure{}

	handlerOpts := []website.Option{website.WithLogger(logger)}
	if cfg.Public.CacheEnabled {
		infra.Cache = cache.NewStore(cache.Options{
			Prefix:     "tinyhttpd",
			DefaultTTL: cfg.Public.CacheTTL,
		}).Namespace("files")
		handlerOpts = append(handlerOpts, website.WithCache(infra.Cache, cfg.Public.CacheTTL))
	}

	handler, err := website.NewHandler(cfg.Public.Path, handlerOpts...)
	if err != nil {
		return nil, err
	}
	infra.Handler = handler

	serverOpts := []server.Option{
		server.WithLogger(logger),
		server.WithBufferSize(cfg.HTTP.BufferSize),
		server.WithAcceptBackoff(cfg.AcceptBackoff.InitialInterval, cfg.AcceptBackoff.MaxInterval),
	}
	if cfg.Metrics.Enabled {
		infra.Registry = prometheus.NewRegistry()
		m, err := metrics.New(metrics.Config{Namespace: cfg.Metrics.Namespace}, infra.Registry)
		if err != nil {
			return nil, fmt.Errorf("metrics: %w", err)
		}
		infra.Metrics = m
		serverOpts = append(serverOpts, server.WithRecorder(m))
	}

	infra.Server = server.New(cfg.HTTP.Addr, serverOpts...)
	return infra, nil
}
