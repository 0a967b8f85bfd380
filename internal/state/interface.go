package state

import (
	"time"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	SaveNavigation(state NavigationState)
	GetNavigation() (*NavigationState, error)
	RecordPlay(pieceID string, at time.Time) error
	LastPlayed() (map[string]time.Time, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
