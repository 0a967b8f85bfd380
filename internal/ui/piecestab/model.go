// Package piecestab renders the catalog as a list of pieces with a play/stop
// button per row and turns clicks and keys into controller commands.
package piecestab

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/pieces/internal/catalog"
	"github.com/llehouerou/pieces/internal/keymap"
	"github.com/llehouerou/pieces/internal/pieces"
	"github.com/llehouerou/pieces/internal/ui"
	"github.com/llehouerou/pieces/internal/ui/cursor"
)

// Model is the pieces tab.
type Model struct {
	ui.Base
	all        []catalog.Piece
	artists    catalog.Artists
	playTimes  catalog.PlayTimes
	lastPlayed map[string]time.Time

	criterion catalog.Criterion
	filtered  []catalog.Piece
	state     pieces.PlaybackState

	cursor  cursor.Cursor
	spinner spinner.Model
	keys    *keymap.Resolver
}

// New creates the tab over the full catalog. playTimes is shared with the
// owner, which keeps incrementing it.
func New(all []catalog.Piece, artists catalog.Artists, playTimes catalog.PlayTimes) Model {
	if artists == nil {
		artists = catalog.Artists{}
	}
	if playTimes == nil {
		playTimes = catalog.PlayTimes{}
	}
	m := Model{
		all:        all,
		artists:    artists,
		playTimes:  playTimes,
		lastPlayed: make(map[string]time.Time),
		cursor:     cursor.New(ui.ScrollMargin),
		spinner:    spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		keys:       keymap.Default(),
	}
	m.filtered = catalog.Filter(all, catalog.All)
	return m
}

// Criterion returns the active criterion.
func (m Model) Criterion() catalog.Criterion {
	return m.criterion
}

// Filtered returns the pieces currently listed.
func (m Model) Filtered() []catalog.Piece {
	return m.filtered
}

// SetCriterion refilters the list. The cursor moves to the selected piece
// when it is listed, to the top otherwise.
func (m *Model) SetCriterion(c catalog.Criterion) {
	changed := c != m.criterion
	m.criterion = c
	m.filtered = catalog.Filter(m.all, c)
	if changed {
		m.cursor.Reset()
		m.focusSelected()
	}
	m.cursor.ClampToBounds(len(m.filtered))
}

// Playback returns the playback state the tab renders.
func (m Model) Playback() pieces.PlaybackState {
	return m.state
}

// SetPlayback updates the playback state. It returns a command starting the
// loading spinner when the selected piece begins buffering.
func (m *Model) SetPlayback(st pieces.PlaybackState) tea.Cmd {
	wasLoading := m.state.Loading
	m.state = st
	if st.Loading && !wasLoading {
		return m.spinner.Tick
	}
	return nil
}

// SetLastPlayed records when a piece was last played.
func (m *Model) SetLastPlayed(id string, at time.Time) {
	m.lastPlayed[id] = at
}

// SetHistory replaces all last-played times.
func (m *Model) SetHistory(history map[string]time.Time) {
	m.lastPlayed = make(map[string]time.Time, len(history))
	for id, at := range history {
		m.lastPlayed[id] = at
	}
}

// Current returns the piece under the cursor.
func (m Model) Current() (catalog.Piece, bool) {
	pos := m.cursor.Pos()
	if pos < 0 || pos >= len(m.filtered) {
		return catalog.Piece{}, false
	}
	return m.filtered[pos], true
}

// SetSize sets the tab dimensions and keeps the cursor in view.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.cursor.EnsureVisible(len(m.filtered), m.listHeight())
}

func (m Model) listHeight() int {
	return m.ListHeight(ui.TabOverhead)
}

func (m *Model) focusSelected() {
	if !m.state.HasSelection() {
		return
	}
	for i, p := range m.filtered {
		if p.ID == m.state.SelectedID {
			m.cursor.Jump(i, len(m.filtered), m.listHeight())
			return
		}
	}
}
