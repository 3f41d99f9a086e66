package http

import "errors"

// ErrUnknownMethod is returned when a token is not one of the supported verbs.
var ErrUnknownMethod = errors.New("unknown method")

// Method is an HTTP request verb.
type Method uint8

const (
	MethodGet Method = iota + 1
	MethodPost
	MethodPut
	MethodDelete
	MethodHead
)

var methodNames = map[Method]string{
	MethodGet:    "GET",
	MethodPost:   "POST",
	MethodPut:    "PUT",
	MethodDelete: "DELETE",
	MethodHead:   "HEAD",
}

// ParseMethod matches token case-sensitively against the supported verbs.
func ParseMethod(token string) (Method, error) {
	switch token {
	case "GET":
		return MethodGet, nil
	case "POST":
		return MethodPost, nil
	case "PUT":
		return MethodPut, nil
	case "DELETE":
		return MethodDelete, nil
	case "HEAD":
		return MethodHead, nil
	default:
		return 0, ErrUnknownMethod
	}
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return "UNKNOWN"
}
