package http

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Parse errors. ParseRequest returns exactly one of these values.
var (
	ErrInvalidRequest  = errors.New("Invalid Request")
	ErrInvalidEncoding = errors.New("Invalid Encoding")
	ErrInvalidProtocol = errors.New("Invalid Protocol")
	ErrInvalidMethod   = errors.New("Invalid Method")
)

// Protocol is the only request protocol token accepted.
const Protocol = "HTTP/1.1"

// Request is a parsed request line. Path never carries the query suffix.
type Request struct {
	method Method
	path   string
	query  *QueryString
}

// NewRequest builds a Request from already parsed parts.
func NewRequest(method Method, path string, query *QueryString) *Request {
	return &Request{method: method, path: path, query: query}
}

func (r *Request) Method() Method { return r.method }

func (r *Request) Path() string { return r.path }

// QueryParams is nil when the path had no '?'.
func (r *Request) QueryParams() *QueryString { return r.query }

// ParseRequest parses the request line at the start of buf. Headers and body
// bytes that follow are ignored. The returned strings all point into a single
// conversion of buf, so nothing is copied per token.
func ParseRequest(buf []byte) (*Request, error) {
	if !utf8.Valid(buf) {
		return nil, ErrInvalidEncoding
	}
	text := string(buf)

	methodToken, rest, ok := nextWord(text)
	if !ok {
		return nil, ErrInvalidRequest
	}
	path, rest, ok := nextWord(rest)
	if !ok {
		return nil, ErrInvalidRequest
	}
	protocol, _, ok := nextWord(rest)
	if !ok {
		return nil, ErrInvalidRequest
	}

	if protocol != Protocol {
		return nil, ErrInvalidProtocol
	}

	method, err := ParseMethod(methodToken)
	if err != nil {
		return nil, ErrInvalidMethod
	}

	var query *QueryString
	if i := strings.IndexByte(path, '?'); i >= 0 {
		query = ParseQueryString(path[i+1:])
		path = path[:i]
	}

	return &Request{method: method, path: path, query: query}, nil
}

// nextWord splits text at the first space or carriage return. The delimiter
// itself is dropped.
func nextWord(text string) (word, rest string, ok bool) {
	i := strings.IndexAny(text, " \r")
	if i < 0 {
		return "", "", false
	}
	return text[:i], text[i+1:], true
}
