// internal/app/update.go
package app

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/pieces/internal/keymap"
	"github.com/llehouerou/pieces/internal/ui"
	"github.com/llehouerou/pieces/internal/ui/action"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.Tab.SetSize(msg.Width, max(msg.Height-ui.StatusHeight, 0))
		m.Prompt.SetSize(msg.Width, ui.StatusHeight)
		m.Help.SetSize(msg.Width, max(msg.Height-ui.StatusHeight, 0))
		return m, nil

	case action.Msg:
		return m.handleAction(msg)

	case BufferedMsg:
		return m.handleBuffered(msg)

	case TickMsg:
		return m.handleTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Tab, cmd = m.Tab.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		if m.Prompt.Active() || m.Help.Active() {
			return m, nil
		}
		var cmd tea.Cmd
		m.Tab, cmd = m.Tab.Update(msg)
		return m, cmd
	}

	// Cursor blink and other prompt internals.
	if m.Prompt.Active() {
		var cmd tea.Cmd
		m.Prompt, cmd = m.Prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Prompt.Active() {
		var cmd tea.Cmd
		m.Prompt, cmd = m.Prompt.Update(msg)
		return m, cmd
	}
	if m.Help.Active() {
		var cmd tea.Cmd
		m.Help, cmd = m.Help.Update(msg)
		return m, cmd
	}

	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		m.log.Info().Msg("quit")
		return m, tea.Quit
	case keymap.ActionPrompt:
		m.clearStatus()
		m.Tab.SetFocused(false)
		return m, m.Prompt.Open(m.Tab.Criterion())
	case keymap.ActionHelp:
		m.Help.Open()
		return m, nil
	}

	var cmd tea.Cmd
	m.Tab, cmd = m.Tab.Update(msg)
	return m, cmd
}
