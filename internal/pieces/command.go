// Package pieces decides what the pieces tab offers and which playback
// commands a click on it produces. Everything here is a pure function of
// the filtered catalog and the playback state; the owning application
// applies the commands and re-evaluates.
package pieces

import "github.com/llehouerou/pieces/internal/catalog"

// CommandKind identifies a command.
type CommandKind int

const (
	KindSelect CommandKind = iota
	KindPlay
	KindStop
)

// String returns the command kind name.
func (k CommandKind) String() string {
	switch k {
	case KindSelect:
		return "Select"
	case KindPlay:
		return "Play"
	case KindStop:
		return "Stop"
	default:
		return "Unknown"
	}
}

// Command is the output vocabulary of the controller.
type Command interface {
	Kind() CommandKind
	String() string
}

// Select makes Piece the selected piece.
type Select struct {
	Piece catalog.Piece
}

// Kind implements Command.
func (Select) Kind() CommandKind { return KindSelect }

func (c Select) String() string { return "Select(" + c.Piece.ID + ")" }

// Play starts playing the selected piece.
type Play struct{}

// Kind implements Command.
func (Play) Kind() CommandKind { return KindPlay }

func (Play) String() string { return "Play()" }

// Stop stops playback.
type Stop struct{}

// Kind implements Command.
func (Stop) Kind() CommandKind { return KindStop }

func (Stop) String() string { return "Stop()" }

// PlaybackState is the part of the player state the controller reads.
// It is owned by the application.
type PlaybackState struct {
	SelectedID string // empty when nothing is selected
	Playing    bool
	Loading    bool // buffering the selected piece; only meaningful with a selection
}

// HasSelection reports whether any piece is selected.
func (s PlaybackState) HasSelection() bool {
	return s.SelectedID != ""
}

// IsSelected reports whether the piece with the given id is selected.
func (s PlaybackState) IsSelected(id string) bool {
	return s.HasSelection() && s.SelectedID == id
}
