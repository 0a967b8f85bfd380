// internal/app/commands.go
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickCmd returns a command that sends TickMsg after 1 second.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// BufferCmd returns a command that sends BufferedMsg once the simulated
// buffering delay has passed.
func BufferCmd(d time.Duration, token uint64) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return BufferedMsg{Token: token} }
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return BufferedMsg{Token: token}
	})
}
