package state

import (
	"time"
)

// Mock is a test double for Manager.
type Mock struct {
	NavState  *NavigationState
	Saved     []NavigationState
	Plays     map[string]time.Time
	RecordErr error
	closed    bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{Plays: make(map[string]time.Time)}
}

func (m *Mock) SaveNavigation(s NavigationState) {
	m.Saved = append(m.Saved, s)
	m.NavState = &s
}

func (m *Mock) GetNavigation() (*NavigationState, error) {
	return m.NavState, nil
}

func (m *Mock) RecordPlay(pieceID string, at time.Time) error {
	if m.RecordErr != nil {
		return m.RecordErr
	}
	m.Plays[pieceID] = at
	return nil
}

func (m *Mock) LastPlayed() (map[string]time.Time, error) {
	result := make(map[string]time.Time, len(m.Plays))
	for k, v := range m.Plays {
		result[k] = v
	}
	return result, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool {
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
