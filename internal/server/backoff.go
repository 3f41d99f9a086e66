package server

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// BackoffConfig 控制连续 accept 失败之间的等待间隔。
type BackoffConfig struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
}

// DefaultBackoffConfig mirrors the delays net/http uses for temporary accept errors.
func DefaultBackoffConfig() BackoffConfig {
	return BackoffConfig{
		InitialInterval: 5 * time.Millisecond,
		MaxInterval:     time.Second,
		Multiplier:      2,
	}
}

func (c BackoffConfig) newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.InitialInterval
	b.MaxInterval = c.MaxInterval
	b.Multiplier = c.Multiplier
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

// wait sleeps for the next backoff interval. It returns false if ctx ended first.
func wait(ctx context.Context, b backoff.BackOff) bool {
	d := b.NextBackOff()
	if d == backoff.Stop {
		d = DefaultBackoffConfig().MaxInterval
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
