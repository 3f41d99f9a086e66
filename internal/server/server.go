// Package server runs the accept, read, parse, dispatch and write loop.
//
// Connections are handled strictly one at a time: a client that connects and
// never sends blocks every other client. There are no read or write timeouts.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/creamcroissant/tinyhttpd/internal/http"
)

// ErrListenerClosed is returned by Serve when the listener was closed by
// something other than context cancellation.
var ErrListenerClosed = errors.New("server: listener closed")

// Server 表示单线程的 HTTP 服务实例。
type Server struct {
	addr       string
	logger     *slog.Logger
	bufferSize int
	recorder   Recorder
	backoff    BackoffConfig

	mu       sync.Mutex
	listener net.Listener
}

// New creates a Server that will listen on addr.
func New(addr string, opts ...Option) *Server {
	s := &Server{
		addr:       addr,
		logger:     slog.Default(),
		bufferSize: DefaultBufferSize,
		recorder:   nopRecorder{},
		backoff:    DefaultBackoffConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Addr returns the bound address once listening, otherwise the configured one.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// Run binds the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context, h Handler) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln, h)
}

// Serve accepts connections on ln until ctx is done. Cancellation closes the
// listener; a connection already being handled still runs to completion.
// Serve returns nil after cancellation.
func (s *Server) Serve(ctx context.Context, ln net.Listener, h Handler) error {
	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	stop := context.AfterFunc(ctx, func() { ln.Close() })
	defer stop()
	defer ln.Close()

	s.logger.Info("server listening", "addr", ln.Addr().String())

	bo := s.backoff.newBackOff()
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				s.logger.Info("server stopped", "addr", ln.Addr().String())
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return ErrListenerClosed
			}
			s.recorder.AcceptFailed()
			s.logger.Error("failed to establish connection", "error", err)
			if !wait(ctx, bo) {
				return nil
			}
			continue
		}
		bo.Reset()
		s.serveConn(conn, h)
	}
}

// serveConn handles exactly one request on conn and closes it.
func (s *Server) serveConn(conn net.Conn, h Handler) {
	defer conn.Close()

	s.recorder.ConnectionAccepted()
	logger := s.logger.With("conn_id", uuid.NewString(), "remote", conn.RemoteAddr().String())
	logger.Info("connection established")

	buf := make([]byte, s.bufferSize)
	n, err := conn.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		s.recorder.ReadFailed()
		logger.Error("failed to read connection", "error", err)
		return
	}
	start := time.Now()
	logger.Debug("message received", "bytes", n, "message", string(buf[:n]))

	req, parseErr := http.ParseRequest(buf[:n])
	if parseErr != nil {
		s.recorder.ParseFailed(parseErr)
	} else {
		logger.Info("request", "method", req.Method().String(), "path", req.Path())
	}

	resp := s.dispatch(h, req, parseErr, logger)
	if resp == nil {
		logger.Warn("handler returned no response")
		return
	}

	if err := resp.Send(conn); err != nil {
		s.recorder.WriteFailed()
		logger.Error("failed to send response", "error", err)
		return
	}
	s.recorder.ResponseSent(int(resp.StatusCode()), time.Since(start))
}
