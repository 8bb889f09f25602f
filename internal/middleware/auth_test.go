package middleware

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractTokenKey(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		ok     bool
	}{
		{"valid", "Token abc123", "abc123", true},
		{"case insensitive scheme", "token abc123", "abc123", true},
		{"missing header", "", "", false},
		{"wrong scheme", "Bearer abc123", "", false},
		{"no key", "Token ", "", false},
		{"key only", "abc123", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := extractTokenKey(tt.header)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, key)
		})
	}
}
