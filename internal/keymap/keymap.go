package keymap

// Binding maps keys to an action and describes it for the help line.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "pieces"
}

// Bindings contains every key binding of the application.
var Bindings = []Binding{
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionPrompt, []string{"/"}, "Filter", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	{ActionMoveUp, []string{"k", "up"}, "Move up", "pieces"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "pieces"},
	{ActionJumpStart, []string{"g", "home"}, "First piece", "pieces"},
	{ActionJumpEnd, []string{"G", "end"}, "Last piece", "pieces"},
	{ActionPageUp, []string{"ctrl+u", "pgup"}, "Half page up", "pieces"},
	{ActionPageDown, []string{"ctrl+d", "pgdown"}, "Half page down", "pieces"},
	{ActionItem, []string{"enter"}, "Select", "pieces"},
	{ActionButton, []string{" ", "space"}, "Play/stop", "pieces"},
	{ActionFilterArtist, []string{"a"}, "Same artist", "pieces"},
	{ActionFilterPiece, []string{"i"}, "Only this piece", "pieces"},
	{ActionBackToAll, []string{"esc", "backspace"}, "All Music", "pieces"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
