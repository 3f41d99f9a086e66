// Package metrics exposes Prometheus collectors for the connection loop.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Config holds naming for the collectors.
type Config struct {
	// Namespace is the prefix for all metrics (default: "tinyhttpd")
	Namespace string
	// Subsystem is an optional subsystem name (default: "server")
	Subsystem string
	// Buckets defines the histogram buckets for connection handling time
	Buckets []float64
}

// DefaultConfig returns the default metrics configuration.
func DefaultConfig() Config {
	return Config{
		Namespace: "tinyhttpd",
		Subsystem: "server",
		Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
	}
}

// Metrics holds the Prometheus collectors.
type Metrics struct {
	connectionsTotal *prometheus.CounterVec
	parseErrorsTotal *prometheus.CounterVec
	responsesTotal   *prometheus.CounterVec
	writeErrorsTotal prometheus.Counter
	requestDuration  prometheus.Histogram
}

// New creates the collectors and registers them with reg.
func New(cfg Config, reg prometheus.Registerer) (*Metrics, error) {
	def := DefaultConfig()
	if cfg.Namespace == "" {
		cfg.Namespace = def.Namespace
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = def.Subsystem
	}
	if len(cfg.Buckets) == 0 {
		cfg.Buckets = def.Buckets
	}

	m := &Metrics{
		connectionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "connections_total",
				Help:      "Connections by outcome of accept and read.",
			},
			[]string{"result"},
		),
		parseErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "parse_errors_total",
				Help:      "Request lines that failed to parse, by error.",
			},
			[]string{"kind"},
		),
		responsesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "responses_total",
				Help:      "Responses written, by status code.",
			},
			[]string{"status"},
		),
		writeErrorsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "write_errors_total",
				Help:      "Responses that could not be written.",
			},
		),
		requestDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "request_duration_seconds",
				Help:      "Time from end of read to end of write.",
				Buckets:   cfg.Buckets,
			},
		),
	}

	for _, c := range []prometheus.Collector{
		m.connectionsTotal,
		m.parseErrorsTotal,
		m.responsesTotal,
		m.writeErrorsTotal,
		m.requestDuration,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) ConnectionAccepted() { m.connectionsTotal.WithLabelValues("accepted").Inc() }

func (m *Metrics) AcceptFailed() { m.connectionsTotal.WithLabelValues("accept_error").Inc() }

func (m *Metrics) ReadFailed() { m.connectionsTotal.WithLabelValues("read_error").Inc() }

func (m *Metrics) ParseFailed(err error) { m.parseErrorsTotal.WithLabelValues(err.Error()).Inc() }

func (m *Metrics) WriteFailed() { m.writeErrorsTotal.Inc() }

// ResponseSent records a written response and how long it took to produce.
func (m *Metrics) ResponseSent(status int, elapsed time.Duration) {
	m.responsesTotal.WithLabelValues(strconv.Itoa(status)).Inc()
	m.requestDuration.Observe(elapsed.Seconds())
}
