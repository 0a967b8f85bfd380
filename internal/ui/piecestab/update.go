package piecestab

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/pieces/internal/catalog"
	"github.com/llehouerou/pieces/internal/keymap"
	"github.com/llehouerou/pieces/internal/pieces"
	"github.com/llehouerou/pieces/internal/ui"
	"github.com/llehouerou/pieces/internal/ui/action"
)

// Update handles keys, mouse events and spinner ticks.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		// Let the spinner stop once buffering is over.
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if !m.IsFocused() {
			return m, nil
		}
		return m.handleKey(msg.String())
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(key string) (Model, tea.Cmd) {
	n, height := len(m.filtered), m.listHeight()

	switch m.keys.Resolve(key) {
	case keymap.ActionMoveUp:
		m.cursor.Move(-1, n, height)
	case keymap.ActionMoveDown:
		m.cursor.Move(1, n, height)
	case keymap.ActionJumpStart:
		m.cursor.Reset()
	case keymap.ActionJumpEnd:
		m.cursor.Jump(n-1, n, height)
	case keymap.ActionPageUp:
		m.cursor.Move(-max(height/2, 1), n, height)
	case keymap.ActionPageDown:
		m.cursor.Move(max(height/2, 1), n, height)
	case keymap.ActionItem:
		if p, ok := m.Current(); ok {
			return m, m.itemClick(p)
		}
	case keymap.ActionButton:
		if p, ok := m.Current(); ok {
			return m, m.buttonClick(p)
		}
	case keymap.ActionFilterArtist:
		if p, ok := m.Current(); ok && p.Artist != "" {
			return m, emit(Navigate{Criterion: catalog.Criterion(p.Artist)})
		}
	case keymap.ActionFilterPiece:
		if p, ok := m.Current(); ok {
			return m, emit(Navigate{Criterion: catalog.Criterion(p.ID)})
		}
	case keymap.ActionBackToAll:
		if m.criterion.IsSet() {
			return m, emit(BackToAll{})
		}
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	n, height := len(m.filtered), m.listHeight()

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.cursor.Move(-1, n, height)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.cursor.Move(1, n, height)
		return m, nil
	case tea.MouseButtonLeft:
	default:
		return m, nil
	}
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	if msg.Y == 0 {
		if m.criterion.IsSet() && msg.X < lipgloss.Width(backLabel()) {
			return m, emit(BackToAll{})
		}
		return m, nil
	}

	idx := m.cursor.IndexAt(msg.Y-ui.HeaderHeight, n, height)
	if idx < 0 {
		return m, nil
	}
	m.cursor.Jump(idx, n, height)
	p := m.filtered[idx]

	// A hidden button leaves its column to the row body.
	if msg.X < ui.ButtonWidth && pieces.ButtonEnabled(p, m.state) {
		return m, m.buttonClick(p)
	}
	return m, m.itemClick(p)
}

func (m Model) itemClick(p catalog.Piece) tea.Cmd {
	return emit(ItemClicked{Piece: p})
}

// buttonClick does nothing while the button is hidden.
func (m Model) buttonClick(p catalog.Piece) tea.Cmd {
	if !pieces.ButtonEnabled(p, m.state) {
		return nil
	}
	return emit(ButtonClicked{Piece: p})
}

func emit(a action.Action) tea.Cmd {
	return func() tea.Msg {
		return ActionMsg(a)
	}
}
