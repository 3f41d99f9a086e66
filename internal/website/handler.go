// Package website serves files from a public directory.
package website

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/creamcroissant/tinyhttpd/internal/cache"
	"github.com/creamcroissant/tinyhttpd/internal/http"
)

// Handler answers GET requests with file contents from the public directory.
// It leaves malformed requests to the server's default 400.
type Handler struct {
	publicPath string
	files      cache.Store
	ttl        time.Duration
	logger     *slog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithCache keeps file contents in store for ttl.
func WithCache(store cache.Store, ttl time.Duration) Option {
	return func(h *Handler) {
		h.files = store
		h.ttl = ttl
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// NewHandler resolves publicPath to an absolute path without symlinks.
func NewHandler(publicPath string, opts ...Option) (*Handler, error) {
	abs, err := filepath.Abs(publicPath)
	if err != nil {
		return nil, fmt.Errorf("resolve public path: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("resolve public path: %w", err)
	}

	h := &Handler{publicPath: resolved, logger: slog.Default()}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// PublicPath returns the resolved directory files are served from.
func (h *Handler) PublicPath() string {
	return h.publicPath
}

func (h *Handler) HandleRequest(req *http.Request) *http.Response {
	if req.Method() != http.MethodGet {
		return http.NewResponse(http.StatusNotFound, "")
	}

	switch req.Path() {
	case "/":
		body, _ := h.readFile("index.html")
		return http.NewResponse(http.StatusOK, body)
	case "/hello":
		body, _ := h.readFile("hello.html")
		return http.NewResponse(http.StatusOK, body)
	default:
		body, ok := h.readFile(req.Path())
		if !ok {
			return http.NewResponse(http.StatusNotFound, "")
		}
		return http.NewResponse(http.StatusOK, body)
	}
}

// readFile returns the contents of name relative to the public directory.
// Paths resolving outside of it are refused.
func (h *Handler) readFile(name string) (string, bool) {
	joined := filepath.Join(h.publicPath, filepath.FromSlash(name))
	resolved, err := filepath.EvalSymlinks(joined)
	if err != nil {
		return "", false
	}
	if !h.contains(resolved) {
		h.logger.Warn("directory traversal attempt", "path", name)
		return "", false
	}

	ctx := context.Background()
	if h.files != nil {
		if body, ok := h.files.GetString(ctx, resolved); ok {
			return body, true
		}
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return "", false
	}
	body := string(data)
	if h.files != nil {
		h.files.SetString(ctx, resolved, body, h.ttl)
	}
	return body, true
}

func (h *Handler) contains(path string) bool {
	rel, err := filepath.Rel(h.publicPath, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
