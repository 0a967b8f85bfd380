package helpbindings

import (
	"github.com/llehouerou/pieces/internal/ui/action"
)

// Source is the action.Msg source name of this component.
const Source = "helpbindings"

// Close signals the help overlay was closed.
type Close struct{}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "helpbindings.close" }

// ActionMsg creates an action.Msg for a helpbindings action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: Source, Action: a}
}
