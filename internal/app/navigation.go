// internal/app/navigation.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/pieces/internal/catalog"
	"github.com/llehouerou/pieces/internal/errmsg"
	"github.com/llehouerou/pieces/internal/pieces"
	"github.com/llehouerou/pieces/internal/state"
)

// navigate switches the tab to a new criterion and settles.
func (m *Model) navigate(c catalog.Criterion) tea.Cmd {
	if c == m.Tab.Criterion() {
		return nil
	}
	m.log.Info().Str("criterion", string(c)).Msg("navigate")
	m.Tab.SetCriterion(c)
	return m.settle()
}

// settle pushes the playback state to the tab, runs the reaction phase and
// persists navigation. It is called after every state change.
func (m *Model) settle() tea.Cmd {
	cmd := m.Tab.SetPlayback(m.playback.State())
	if m.react() {
		cmd = tea.Batch(cmd, m.Tab.SetPlayback(m.playback.State()))
	}
	m.saveNavigation()
	return cmd
}

// react redirects an empty filtered view to all pieces and auto-selects the
// only piece of a single-result view. The auto-select guard makes a second
// pass a no-op. It returns whether anything changed.
func (m *Model) react() bool {
	changed := false

	if c := m.Tab.Criterion(); c.IsSet() && len(m.Tab.Filtered()) == 0 {
		m.log.Info().Str("criterion", string(c)).Msg("no piece matches, showing all")
		m.Notice = "Nothing matches " + string(c) + ", showing All Music"
		m.Tab.SetCriterion(catalog.All)
		changed = true
	}

	st := m.playback.State()
	if cmd, ok := pieces.AutoSelect(m.Tab.Filtered(), st.SelectedID, st.Playing); ok {
		m.log.Debug().Stringer("command", cmd).Msg("auto-select")
		if _, err := m.playback.Apply(cmd); err != nil {
			m.setError(errmsg.OpSelect, err)
		}
		changed = true
	}

	return changed
}

// saveNavigation hands the navigation snapshot to the state manager when it
// differs from the last one.
func (m *Model) saveNavigation() {
	nav := state.NavigationState{
		Criterion:       string(m.Tab.Criterion()),
		SelectedPieceID: m.playback.State().SelectedID,
	}
	if nav == m.saved {
		return
	}
	m.saved = nav
	m.stateMgr.SaveNavigation(nav)
}
