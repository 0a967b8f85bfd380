// internal/app/playback.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/pieces/internal/errmsg"
	"github.com/llehouerou/pieces/internal/pieces"
	"github.com/llehouerou/pieces/internal/playback"
)

// apply runs the commands of one event in order, then settles. A failing
// command stops the ones after it.
func (m *Model) apply(cmds []pieces.Command) tea.Cmd {
	effects, err := m.playback.ApplyAll(cmds)

	out := make([]tea.Cmd, 0, len(effects)+1)
	for _, e := range effects {
		out = append(out, m.afterEffect(e))
	}
	if err != nil {
		m.setError(commandOp(cmds[len(effects)-1]), err)
	}
	out = append(out, m.settle())
	return tea.Batch(out...)
}

// afterEffect schedules what an applied command started: the end of
// buffering, the elapsed-time tick and the play history entry.
func (m *Model) afterEffect(e playback.Effect) tea.Cmd {
	var cmds []tea.Cmd
	if e.Started != nil {
		m.recordPlay(e.Started.ID)
	}
	if e.Buffering {
		cmds = append(cmds, BufferCmd(m.buffer, e.Token))
	}
	if e.Current.Playing && !m.ticking {
		m.ticking = true
		cmds = append(cmds, TickCmd())
	}
	return tea.Batch(cmds...)
}

func (m *Model) recordPlay(id string) {
	at := m.now()
	if err := m.stateMgr.RecordPlay(id, at); err != nil {
		m.setErrorWith(errmsg.OpHistorySave, id, err)
		return
	}
	m.Tab.SetLastPlayed(id, at)
}

func (m Model) handleBuffered(msg BufferedMsg) (tea.Model, tea.Cmd) {
	if !m.playback.Buffered(msg.Token) {
		return m, nil
	}
	return m, m.settle()
}

// handleTick adds a second to the selected piece while it plays. Buffering
// time is not counted.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	st := m.playback.State()
	status := playback.StatusOf(st)
	if !status.IsActive() {
		m.ticking = false
		return m, nil
	}
	if status == playback.StatusPlaying {
		m.playTimes.Add(st.SelectedID, 1)
	}
	return m, TickCmd()
}

func commandOp(cmd pieces.Command) errmsg.Op {
	switch cmd.Kind() {
	case pieces.KindPlay:
		return errmsg.OpPlaybackStart
	case pieces.KindStop:
		return errmsg.OpPlaybackStop
	default:
		return errmsg.OpSelect
	}
}
