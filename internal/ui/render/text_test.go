package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean text unchanged", "Drones", "Drones"},
		{"control chars dropped", "Dro\x07nes\n", "Drones"},
		{"tab kept", "a\tb", "a\tb"},
		{"nbsp becomes space", "Lemni\u00a0scate", "Lemni scate"},
		{"invalid byte dropped", "ab\xffc", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncation with ellipsis", "hello world", 8, "hello..."},
		{"zero width", "hello", 0, ""},
		{"empty string", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestTruncateAndPad(t *testing.T) {
	if got := TruncateAndPad("abc", 6); got != "abc   " {
		t.Errorf("TruncateAndPad short = %q", got)
	}
	if got := TruncateAndPad("abcdefghij", 6); got != "abc..." {
		t.Errorf("TruncateAndPad long = %q", got)
	}
}

func TestRow(t *testing.T) {
	got := Row("left", "right", 12)
	if got != "left   right" {
		t.Errorf("Row = %q", got)
	}

	// Always at least one space.
	got = Row("left", "right", 4)
	if got != "left right" {
		t.Errorf("Row overflow = %q", got)
	}
}

func TestFit(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("hello world")

	for _, width := range []int{5, 11, 20} {
		if got := lipgloss.Width(Fit(styled, width)); got != width {
			t.Errorf("Fit width %d = %d", width, got)
		}
	}
}

func TestSeparator(t *testing.T) {
	if got := Separator(3); got != "───" {
		t.Errorf("Separator(3) = %q", got)
	}
	if got := Separator(-1); got != "" {
		t.Errorf("Separator(-1) = %q", got)
	}
}

func TestEmptyLine(t *testing.T) {
	if got := EmptyLine(4); got != strings.Repeat(" ", 4) {
		t.Errorf("EmptyLine(4) = %q", got)
	}
}
