package http

import "io"

// Response is a status line plus an optional body. No headers are written.
type Response struct {
	statusCode StatusCode
	body       string
}

// NewResponse builds a Response. An empty body is the same as no body.
func NewResponse(statusCode StatusCode, body string) *Response {
	return &Response{statusCode: statusCode, body: body}
}

func (r *Response) StatusCode() StatusCode { return r.statusCode }

func (r *Response) Body() string { return r.body }

// Bytes returns "HTTP/1.1 {code} {reason}\r\n\r\n{body}".
func (r *Response) Bytes() []byte {
	code := r.statusCode.String()
	reason := r.statusCode.ReasonPhrase()

	buf := make([]byte, 0, len(Protocol)+len(code)+len(reason)+len(r.body)+6)
	buf = append(buf, Protocol...)
	buf = append(buf, ' ')
	buf = append(buf, code...)
	buf = append(buf, ' ')
	buf = append(buf, reason...)
	buf = append(buf, "\r\n\r\n"...)
	buf = append(buf, r.body...)
	return buf
}

// Send writes the serialized response with a single Write call. Errors from
// w are returned as is.
func (r *Response) Send(w io.Writer) error {
	_, err := w.Write(r.Bytes())
	return err
}
