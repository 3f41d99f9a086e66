package http

import "strconv"

// StatusCode is a response status.
type StatusCode uint16

const (
	StatusOK         StatusCode = 200
	StatusBadRequest StatusCode = 400
	StatusNotFound   StatusCode = 404
)

// String renders the numeric code.
func (c StatusCode) String() string {
	return strconv.Itoa(int(c))
}

// ReasonPhrase is a short identifier, not the registered HTTP reason text.
func (c StatusCode) ReasonPhrase() string {
	switch c {
	case StatusOK:
		return "Ok"
	case StatusBadRequest:
		return "BadRequest"
	case StatusNotFound:
		return "NotFound"
	default:
		return "Unknown"
	}
}
