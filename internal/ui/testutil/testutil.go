// Package testutil provides helpers for asserting on rendered views.
package testutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape sequences so rendered output can be compared
// as plain text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// Lines strips styling and splits output into lines, dropping trailing
// blank lines.
func Lines(output string) []string {
	lines := strings.Split(StripANSI(output), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// MeasureWidth returns the visual width of a string without its styling.
func MeasureWidth(s string) int {
	return lipgloss.Width(StripANSI(s))
}

// FindLine returns the first unstyled line containing substr, or "".
func FindLine(output, substr string) string {
	for _, line := range Lines(output) {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// LineIndex returns the index of the first unstyled line containing substr,
// or -1. Tests use it to compute mouse coordinates.
func LineIndex(output, substr string) int {
	for i, line := range Lines(output) {
		if strings.Contains(line, substr) {
			return i
		}
	}
	return -1
}

// CountLines returns the number of non-blank lines in the output.
func CountLines(output string) int {
	count := 0
	for _, line := range Lines(output) {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}
