package piecestab

import (
	"github.com/llehouerou/pieces/internal/catalog"
	"github.com/llehouerou/pieces/internal/ui/action"
)

// Source is the action.Msg source name of this component.
const Source = "piecestab"

// ItemClicked reports a click on a piece row body.
type ItemClicked struct {
	Piece catalog.Piece
}

// ActionType implements action.Action.
func (a ItemClicked) ActionType() string { return "piecestab.item_clicked" }

// ButtonClicked reports a click on a piece's play/stop button. The
// commands are decided by the receiver against the playback state at the
// time the action is handled.
type ButtonClicked struct {
	Piece catalog.Piece
}

// ActionType implements action.Action.
func (a ButtonClicked) ActionType() string { return "piecestab.button_clicked" }

// Navigate requests a new criterion.
type Navigate struct {
	Criterion catalog.Criterion
}

// ActionType implements action.Action.
func (a Navigate) ActionType() string { return "piecestab.navigate" }

// BackToAll requests the unfiltered view.
type BackToAll struct{}

// ActionType implements action.Action.
func (a BackToAll) ActionType() string { return "piecestab.back_to_all" }

// ActionMsg creates an action.Msg for a piecestab action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: Source, Action: a}
}
