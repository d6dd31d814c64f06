package openapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMessage_FallbackChain(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "nested error message wins",
			raw:      `{"error":{"message":"nested"},"message":"top","extra":1}`,
			expected: "nested",
		},
		{
			name:     "top-level message",
			raw:      `{"message":"top","error":{}}`,
			expected: "top",
		},
		{
			name:     "top-level error string",
			raw:      `{"error":"plain error"}`,
			expected: "plain error",
		},
		{
			name:     "unrecognized object falls back to raw body",
			raw:      `{"code":42}`,
			expected: `{"code":42}`,
		},
		{
			name:     "non-JSON body is returned as-is",
			raw:      `Bad Gateway`,
			expected: "Bad Gateway",
		},
		{
			name:     "empty body falls back to the local message",
			raw:      ``,
			expected: "local fallback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, _ := extractMessage([]byte(tt.raw), "local fallback")
			assert.Equal(t, tt.expected, msg)
		})
	}
}

func TestExtractMessage_DetailCarriesDecodedBody(t *testing.T) {
	_, detail := extractMessage([]byte(`{"error":{"message":"boom"}}`), "fallback")
	body, ok := detail.(map[string]interface{})
	assert.True(t, ok)
	assert.Contains(t, body, "error")
}
