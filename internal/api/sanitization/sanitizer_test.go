package sanitization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeField(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Maria Silva", "Maria Silva"},
		{"crlf", "linha 1\r\nlinha 2", "linha 1\nlinha 2"},
		{"control chars", "Ma\x00ria\x07", "Maria"},
		{"tabs kept", "a\tb", "a\tb"},
		{"accents kept", "João Conceição", "João Conceição"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeField(tt.input))
		})
	}
}

func TestSanitizeToken(t *testing.T) {
	assert.Equal(t, "tok", SanitizeToken("  tok\n"))
}
