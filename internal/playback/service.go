// Package playback owns the player state the pieces tab reads and applies
// the commands it emits.
package playback

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/llehouerou/pieces/internal/catalog"
	"github.com/llehouerou/pieces/internal/pieces"
)

// ErrNothingSelected is returned when Play is applied without a selection.
var ErrNothingSelected = errors.New("nothing selected")

// Effect describes what applying a command did.
type Effect struct {
	Previous pieces.PlaybackState
	Current  pieces.PlaybackState

	// Buffering is set when the device was (re)started and the service now
	// waits for Buffered(Token).
	Buffering bool
	Token     uint64

	// Started is the piece the device was started on, if any.
	Started *catalog.Piece
}

// Changed reports whether the state changed.
func (e Effect) Changed() bool {
	return e.Previous != e.Current
}

// Service applies commands to the playback state. It is not safe for
// concurrent use; the UI event loop is its only caller.
type Service struct {
	state    pieces.PlaybackState
	selected catalog.Piece
	device   Device
	token    uint64
	log      zerolog.Logger
}

// New creates a service driving the given device.
func New(device Device, log zerolog.Logger) *Service {
	return &Service{
		device: device,
		log:    log.With().Str("component", "playback").Logger(),
	}
}

// State returns the current playback state.
func (s *Service) State() pieces.PlaybackState {
	return s.state
}

// Selected returns the selected piece, if any.
func (s *Service) Selected() (catalog.Piece, bool) {
	return s.selected, s.state.HasSelection()
}

// Restore selects a piece without touching the device. Used when resuming
// a previous session.
func (s *Service) Restore(p catalog.Piece) {
	if s.state.Playing {
		return
	}
	s.selected = p
	s.state.SelectedID = p.ID
}

// Apply applies one command.
func (s *Service) Apply(cmd pieces.Command) (Effect, error) {
	e := Effect{Previous: s.state}
	var err error

	switch c := cmd.(type) {
	case pieces.Select:
		err = s.applySelect(c.Piece, &e)
	case pieces.Play:
		err = s.applyPlay(&e)
	case pieces.Stop:
		err = s.applyStop()
	default:
		err = fmt.Errorf("unknown command %v", cmd)
	}

	e.Current = s.state
	ev := s.log.Debug()
	if err != nil {
		ev = s.log.Warn().Err(err)
	}
	ev.Stringer("command", cmd).
		Stringer("status", StatusOf(s.state)).
		Str("selected", s.state.SelectedID).
		Msg("apply")

	return e, err
}

// ApplyAll applies commands in order and stops at the first error.
// Effects of the applied commands are returned in the same order.
func (s *Service) ApplyAll(cmds []pieces.Command) ([]Effect, error) {
	effects := make([]Effect, 0, len(cmds))
	for _, cmd := range cmds {
		e, err := s.Apply(cmd)
		effects = append(effects, e)
		if err != nil {
			return effects, err
		}
	}
	return effects, nil
}

// Buffered ends the buffering started by the effect carrying token.
// Stale tokens, from a piece that was since stopped or replaced, are
// ignored. It returns whether the state changed.
func (s *Service) Buffered(token uint64) bool {
	if token != s.token || !s.state.Loading {
		return false
	}
	s.state.Loading = false
	s.log.Debug().Str("selected", s.state.SelectedID).Msg("buffered")
	return true
}

func (s *Service) applySelect(p catalog.Piece, e *Effect) error {
	if s.state.IsSelected(p.ID) {
		return nil
	}

	s.selected = p
	s.state.SelectedID = p.ID
	s.state.Loading = false

	if !s.state.Playing {
		return nil
	}

	// Switching while playing carries on with the new piece.
	return s.start(e)
}

func (s *Service) applyPlay(e *Effect) error {
	if !s.state.HasSelection() {
		return ErrNothingSelected
	}
	if s.state.Playing {
		return nil
	}
	s.state.Playing = true
	return s.start(e)
}

func (s *Service) applyStop() error {
	if !s.state.Playing {
		return nil
	}
	s.token++
	s.state.Playing = false
	s.state.Loading = false
	if err := s.device.Stop(); err != nil {
		return fmt.Errorf("stop device: %w", err)
	}
	return nil
}

func (s *Service) start(e *Effect) error {
	s.token++
	if err := s.device.Start(s.selected); err != nil {
		s.state.Playing = false
		s.state.Loading = false
		return fmt.Errorf("start %s: %w", s.selected.ID, err)
	}
	s.state.Loading = true

	started := s.selected
	e.Buffering = true
	e.Token = s.token
	e.Started = &started
	return nil
}
