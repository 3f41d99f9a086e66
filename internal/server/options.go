package server

import (
	"log/slog"
	"time"
)

// DefaultBufferSize is the capacity of the single read done per connection.
const DefaultBufferSize = 1024

// Option configures a Server.
type Option func(*Server)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithBufferSize sets the read buffer capacity. Requests longer than size are
// truncated, never rejected.
func WithBufferSize(size int) Option {
	return func(s *Server) {
		if size > 0 {
			s.bufferSize = size
		}
	}
}

func WithRecorder(r Recorder) Option {
	return func(s *Server) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithAcceptBackoff bounds the delay between consecutive failed accepts.
func WithAcceptBackoff(initial, maxInterval time.Duration) Option {
	return func(s *Server) {
		if initial > 0 {
			s.backoff.InitialInterval = initial
		}
		if maxInterval > 0 {
			s.backoff.MaxInterval = maxInterval
		}
	}
}

// Recorder receives connection loop events. *metrics.Metrics implements it.
type Recorder interface {
	ConnectionAccepted()
	AcceptFailed()
	ReadFailed()
	ParseFailed(err error)
	WriteFailed()
	ResponseSent(status int, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ConnectionAccepted() {}
func (nopRecorder) AcceptFailed() {}
func (nopRecorder) ReadFailed() {}
func (nopRecorder) ParseFailed(error) {}
func (nopRecorder) WriteFailed() {}
func (nopRecorder) ResponseSent(int, time.Duration) {}
