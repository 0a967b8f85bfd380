package criterionprompt

import (
	"github.com/llehouerou/pieces/internal/catalog"
	"github.com/llehouerou/pieces/internal/ui/action"
)

// Source is the action.Msg source name of this component.
const Source = "criterionprompt"

// Result is sent when the prompt closes.
type Result struct {
	Criterion catalog.Criterion
	Canceled  bool // true if the user pressed Escape
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "criterionprompt.result" }

// ActionMsg creates an action.Msg for a criterionprompt action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: Source, Action: a}
}
