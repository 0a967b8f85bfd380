// Package playtime formats elapsed playing time for display.
package playtime

import (
	"fmt"
	"math"
)

// Format renders seconds as "m:ss", or "h:mm:ss" from one hour on.
// Negative, NaN and infinite values render as "0:00".
func Format(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		seconds = 0
	}
	total := int64(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatKnown formats the seconds when known and returns "" otherwise.
func FormatKnown(seconds float64, known bool) string {
	if !known {
		return ""
	}
	return Format(seconds)
}
