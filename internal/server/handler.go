package server

import (
	"log/slog"

	"github.com/creamcroissant/tinyhttpd/internal/http"
)

// Handler turns a parsed request into a response.
type Handler interface {
	HandleRequest(req *http.Request) *http.Response
}

// BadRequestHandler is implemented by handlers that want to answer
// unparseable requests themselves. Handlers without it get DefaultBadRequest.
type BadRequestHandler interface {
	HandleBadRequest(err error) *http.Response
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(req *http.Request) *http.Response

// HandleRequest calls f(req).
func (f HandlerFunc) HandleRequest(req *http.Request) *http.Response {
	return f(req)
}

// DefaultBadRequest logs err and returns a 400 without body.
func DefaultBadRequest(logger *slog.Logger, err error) *http.Response {
	logger.Warn("failed to parse request", "error", err)
	return http.NewResponse(http.StatusBadRequest, "")
}

func (s *Server) dispatch(h Handler, req *http.Request, parseErr error, logger *slog.Logger) *http.Response {
	if parseErr != nil {
		if bh, ok := h.(BadRequestHandler); ok {
			return bh.HandleBadRequest(parseErr)
		}
		return DefaultBadRequest(logger, parseErr)
	}
	return h.HandleRequest(req)
}
