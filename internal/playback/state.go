package playback

import "github.com/llehouerou/pieces/internal/pieces"

// Status summarizes a playback state for logging and the status line.
type Status int

const (
	StatusIdle Status = iota
	StatusStopped
	StatusBuffering
	StatusPlaying
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusStopped:
		return "Stopped"
	case StatusBuffering:
		return "Buffering"
	case StatusPlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}

// StatusOf returns the status of a playback state.
func StatusOf(st pieces.PlaybackState) Status {
	switch {
	case !st.HasSelection():
		return StatusIdle
	case st.Loading:
		return StatusBuffering
	case st.Playing:
		return StatusPlaying
	default:
		return StatusStopped
	}
}

// IsActive returns true if the device is producing or about to produce sound.
func (s Status) IsActive() bool {
	return s == StatusPlaying || s == StatusBuffering
}
