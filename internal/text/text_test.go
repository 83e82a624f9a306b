package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"truncate with ellipsis", "hello world", 8, "hello..."},
		{"very short width", "hello", 3, "hel"},
		{"zero width", "hello", 0, ""},
		{"negative width", "hello", -1, ""},
		{"empty string", "", 10, ""},
		{"unicode fits", "Hello世界", 8, "Hello世界"},
		{"with ANSI no truncation", "\x1b[31mhello\x1b[0m", 5, "\x1b[31mhello\x1b[0m"},
		{"truncate with ANSI", "\x1b[31mhello world\x1b[0m", 8, "hello..."},
		{"width 1", "hello", 1, "h"},
		{"width 2", "hello", 2, "he"},
		{"width 4 with ellipsis", "hello world", 4, "h..."},
		{"width 3 with ANSI", "\x1b[31mhello\x1b[0m", 3, "hel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.input, tt.width))
		})
	}
}

func TestCountVisibleWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"plain text", "hello", 5},
		{"with ANSI", "\x1b[31mhello\x1b[0m", 5},
		{"multiple ANSI", "\x1b[1m\x1b[31mhi\x1b[0m", 2},
		{"empty", "", 0},
		{"unicode", "世界", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountVisibleWidth(tt.input))
		})
	}
}

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no ANSI", "hello", "hello"},
		{"color code", "\x1b[31mhello\x1b[0m", "hello"},
		{"bold", "\x1b[1mbold\x1b[0m", "bold"},
		{"multiple codes", "\x1b[1m\x1b[31mhi\x1b[0m", "hi"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripANSI(tt.input))
		})
	}
}
