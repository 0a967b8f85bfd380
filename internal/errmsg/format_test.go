//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpCatalogLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpCatalogLoad,
			err:      errors.New("file not found"),
			expected: "Failed to load catalog: file not found",
		},
		{
			name:     "playback operation",
			op:       OpPlaybackStart,
			err:      errors.New("no output device"),
			expected: "Failed to start playback: no output device",
		},
		{
			name:     "history operation",
			op:       OpHistorySave,
			err:      errors.New("database is locked"),
			expected: "Failed to save play history: database is locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpSelect,
			context:  "drones",
			err:      nil,
			expected: "",
		},
		{
			name:     "includes context",
			op:       OpPlaybackStart,
			context:  "drones",
			err:      errors.New("busy"),
			expected: "Failed to start playback 'drones': busy",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpCatalogLoad,
			context:  "",
			err:      errors.New("permission denied"),
			expected: "Failed to load catalog: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith() = %q, want %q", result, tt.expected)
			}
		})
	}
}
