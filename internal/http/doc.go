// Package http parses HTTP/1.1 request lines and serializes status-line
// responses. It does not read headers or bodies.
package http
