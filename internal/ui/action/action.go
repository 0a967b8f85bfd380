// Package action defines how UI components report user intents to the app.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action represents an intent from a UI component.
// ActionType returns a dotted identifier used in logs.
type Action interface {
	ActionType() string
}

// Msg wraps an action with the name of the component that produced it.
type Msg struct {
	Source string // "piecestab", "criterionprompt"
	Action Action
}

// Type returns "<source>: <action type>" for logging.
func (m Msg) Type() string {
	if m.Action == nil {
		return m.Source
	}
	return m.Source + ": " + m.Action.ActionType()
}

var _ tea.Msg = Msg{}
