// internal/app/handlers.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/pieces/internal/catalog"
	"github.com/llehouerou/pieces/internal/pieces"
	"github.com/llehouerou/pieces/internal/ui/action"
	"github.com/llehouerou/pieces/internal/ui/criterionprompt"
	"github.com/llehouerou/pieces/internal/ui/piecestab"
)

// handleAction routes actions from the tab and the prompt.
func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	m.log.Debug().Str("action", msg.Type()).Msg("action")

	switch a := msg.Action.(type) {
	case piecestab.ItemClicked:
		m.clearStatus()
		return m, m.apply([]pieces.Command{pieces.OnItemClick(a.Piece)})

	case piecestab.ButtonClicked:
		// Clicks queued behind an earlier one are decided against the
		// state that one left.
		st := m.playback.State()
		if !pieces.ButtonEnabled(a.Piece, st) {
			return m, nil
		}
		m.clearStatus()
		return m, m.apply(pieces.OnActionButtonClick(a.Piece, st))

	case piecestab.Navigate:
		m.clearStatus()
		return m, m.navigate(a.Criterion)

	case piecestab.BackToAll:
		m.clearStatus()
		return m, m.navigate(catalog.All)

	case criterionprompt.Result:
		m.Tab.SetFocused(true)
		if a.Canceled {
			return m, nil
		}
		return m, m.navigate(a.Criterion)
	}

	return m, nil
}

func (m *Model) clearStatus() {
	m.ErrorMsg = ""
	m.Notice = ""
}
