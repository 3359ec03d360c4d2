package w2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		token string
		want  float64
		ok    bool
	}{
		{"52,345.67", 52345.67, true},
		{"1,234,567.89", 1234567.89, true},
		{"6789.01", 6789.01, true},
		{"5 262 70", 5262.70, true},
		{"  5 262 70  ", 5262.70, true},
		{"0.00", 0.00, true},
		{"not-a-number", 0, false},
		{"12a", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseAmount(tt.token)
		assert.Equal(t, tt.ok, ok, "token %q", tt.token)
		if tt.ok {
			assert.InDelta(t, tt.want, got, 0.0001, "token %q", tt.token)
		}
	}
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	text := "1 Wages,\ttips\r\n  other   compensation\f 52,345.67"
	assert.Equal(t, "1 Wages, tips other compensation 52,345.67", Normalize(text))
}

func TestNormalizeRewritesSplitThousands(t *testing.T) {
	assert.Equal(t, "Wages 5,262.70 total", Normalize("Wages 5 262 70 total"))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	text := "  Box 1 \t wages \n 5 262 70 \n Box 2 \r\n 538.72 "
	once := Normalize(text)
	assert.Equal(t, once, Normalize(once))
}
