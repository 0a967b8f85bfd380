// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit   Action = "quit"
	ActionPrompt Action = "prompt" // open the criterion prompt
	ActionHelp   Action = "help"

	// List navigation
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"

	// Row activation
	ActionItem   Action = "item"   // enter - same as clicking the row
	ActionButton Action = "button" // space - same as clicking the play/stop button

	// Criterion
	ActionFilterArtist Action = "filter_artist" // a
	ActionFilterPiece  Action = "filter_piece"  // i
	ActionBackToAll    Action = "back_to_all"   // esc/backspace
)
