package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// PublicPathEnv overrides public.path when set.
const PublicPathEnv = "HTTP_PUBLIC_PATH"

// Load reads config.yaml (optional), TINYHTTPD_* variables and HTTP_PUBLIC_PATH.
func Load() (*Config, error) {
	return LoadWith(viper.New())
}

// LoadWith loads configuration into v. Callers may preset a config file on v.
func LoadWith(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/tinyhttpd/")

	v.SetEnvPrefix("TINYHTTPD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("public.path", "TINYHTTPD_PUBLIC_PATH", PublicPathEnv); err != nil {
		return nil, fmt.Errorf("bind env public.path: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.HTTP.BufferSize <= 0 {
		return nil, fmt.Errorf("http.buffer_size must be positive, got %d", cfg.HTTP.BufferSize)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", "127.0.0.1:8080")
	v.SetDefault("http.buffer_size", 1024)

	v.SetDefault("public.path", "./public")
	v.SetDefault("public.cache_enabled", true)
	v.SetDefault("public.cache_ttl", "30s")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.add_source", false)

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.addr", "127.0.0.1:9090")
	v.SetDefault("metrics.namespace", "tinyhttpd")

	v.SetDefault("accept_backoff.initial_interval", "5ms")
	v.SetDefault("accept_backoff.max_interval", "1s")
}
