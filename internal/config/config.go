package config

import (
	"log/slog"
	"time"
)

// Config 汇总应用的全部配置。
type Config struct {
	HTTP          HTTPConfig    `mapstructure:"http" yaml:"http"`
	Public        PublicConfig  `mapstructure:"public" yaml:"public"`
	Log           LogConfig     `mapstructure:"log" yaml:"log"`
	Metrics       MetricsConfig `mapstructure:"metrics" yaml:"metrics"`
	AcceptBackoff BackoffConfig `mapstructure:"accept_backoff" yaml:"accept_backoff"`
}

// HTTPConfig 定义监听地址与读缓冲区。
type HTTPConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
	// BufferSize is the capacity of the single read per connection. Bytes
	// beyond it are never read.
	BufferSize int `mapstructure:"buffer_size" yaml:"buffer_size"`
}

// PublicConfig 定义静态文件目录。
type PublicConfig struct {
	Path         string        `mapstructure:"path" yaml:"path"`
	CacheEnabled bool          `mapstructure:"cache_enabled" yaml:"cache_enabled"`
	CacheTTL     time.Duration `mapstructure:"cache_ttl" yaml:"cache_ttl"`
}

// LogConfig 定义日志配置。
type LogConfig struct {
	Level     string `mapstructure:"level" yaml:"level"`
	Format    string `mapstructure:"format" yaml:"format"`
	AddSource bool   `mapstructure:"add_source" yaml:"add_source"`
}

// MetricsConfig 定义 Prometheus 指标配置。
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled" yaml:"enabled"`
	Addr      string `mapstructure:"addr" yaml:"addr"`
	Namespace string `mapstructure:"namespace" yaml:"namespace"`
}

// BackoffConfig spaces out consecutive accept failures.
type BackoffConfig struct {
	InitialInterval time.Duration `mapstructure:"initial_interval" yaml:"initial_interval"`
	MaxInterval     time.Duration `mapstructure:"max_interval" yaml:"max_interval"`
}

func (c LogConfig) SlogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
