package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		token string
		want  Method
	}{
		{"GET", MethodGet},
		{"POST", MethodPost},
		{"PUT", MethodPut},
		{"DELETE", MethodDelete},
		{"HEAD", MethodHead},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			m, err := ParseMethod(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m)
			assert.Equal(t, tt.token, m.String())
		})
	}
}

func TestParseMethodRejectsUnknownTokens(t *testing.T) {
	for _, token := range []string{"", "get", "Get", "PATCH", "OPTIONS", "GET ", "FOO"} {
		_, err := ParseMethod(token)
		assert.ErrorIs(t, err, ErrUnknownMethod, "token %q", token)
	}
}
