// internal/app/messages.go
package app

import "time"

// TickMsg is sent every second while a piece plays.
type TickMsg time.Time

// BufferedMsg ends the buffering started by the effect carrying Token.
type BufferedMsg struct {
	Token uint64
}
