package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no ansi codes", "hello world", "hello world"},
		{"with color codes", "\x1b[31mred\x1b[0m text", "red text"},
		{"with multiple codes", "\x1b[1;32mbold green\x1b[0m", "bold green"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripANSI(tt.input))
		})
	}
}

func TestLines(t *testing.T) {
	out := "\x1b[1mone\x1b[0m\ntwo\n\n  \n"
	assert.Equal(t, []string{"one", "two"}, Lines(out))
}

func TestFindLineAndIndex(t *testing.T) {
	out := "header\n\x1b[31m▶ Drones\x1b[0m\n▶ Lemniscate"

	assert.Equal(t, "▶ Drones", FindLine(out, "Drones"))
	assert.Equal(t, "", FindLine(out, "missing"))
	assert.Equal(t, 2, LineIndex(out, "Lemniscate"))
	assert.Equal(t, -1, LineIndex(out, "missing"))
}

func TestCountLines(t *testing.T) {
	assert.Equal(t, 2, CountLines("a\n\n b \n"))
	assert.Equal(t, 0, CountLines(""))
}

func TestMeasureWidth(t *testing.T) {
	assert.Equal(t, 5, MeasureWidth("\x1b[1mhello\x1b[0m"))
}
