package pieces

import "github.com/llehouerou/pieces/internal/catalog"

// AutoSelect returns a Select for the only piece of a single-result filter.
// It fires only while nothing is playing and only when that piece is not
// already selected, so evaluating it again after the Select was applied
// yields nothing. An empty filtered set never selects; the caller is
// expected to navigate back to the unfiltered view instead.
func AutoSelect(filtered []catalog.Piece, selectedID string, playing bool) (Command, bool) {
	if playing || len(filtered) != 1 {
		return nil, false
	}
	if filtered[0].ID == selectedID {
		return nil, false
	}
	return Select{Piece: filtered[0]}, true
}

// OnItemClick handles a click on a piece row. It always selects, even a
// piece that is already selected.
func OnItemClick(p catalog.Piece) Command {
	return Select{Piece: p}
}

// OnActionButtonClick handles a click on a piece's play/stop button.
// The returned commands must be applied in order, before any other command.
//
//	selected, playing     -> Stop
//	selected, stopped     -> Play
//	not selected, playing -> Select
//	not selected, stopped -> Select, Play
func OnActionButtonClick(p catalog.Piece, st PlaybackState) []Command {
	selected := st.IsSelected(p.ID)
	switch {
	case selected && st.Playing:
		return []Command{Stop{}}
	case selected:
		return []Command{Play{}}
	case st.Playing:
		// The application keeps playing the new selection under its own policy.
		return []Command{Select{Piece: p}}
	default:
		return []Command{Select{Piece: p}, Play{}}
	}
}

// ButtonEnabled reports whether the piece's action button is offered.
// It is hidden while the selected piece buffers so an in-flight click
// cannot be repeated.
func ButtonEnabled(p catalog.Piece, st PlaybackState) bool {
	return !(st.Loading && st.IsSelected(p.ID))
}

// ItemState is the per-row interaction state.
type ItemState int

const (
	Idle ItemState = iota
	SelectedStopped
	SelectedPlaying
	SelectedLoading
)

// String returns the item state name.
func (s ItemState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case SelectedStopped:
		return "SelectedStopped"
	case SelectedPlaying:
		return "SelectedPlaying"
	case SelectedLoading:
		return "SelectedLoading"
	default:
		return "Unknown"
	}
}

// Classify returns the interaction state of a piece. Loading takes
// precedence over playing.
func Classify(p catalog.Piece, st PlaybackState) ItemState {
	if !st.IsSelected(p.ID) {
		return Idle
	}
	switch {
	case st.Loading:
		return SelectedLoading
	case st.Playing:
		return SelectedPlaying
	default:
		return SelectedStopped
	}
}

// ShowsStop reports whether the action button offers Stop instead of Play.
func ShowsStop(p catalog.Piece, st PlaybackState) bool {
	return st.Playing && st.IsSelected(p.ID)
}

// Hint describes what clicking the row does.
func Hint(p catalog.Piece, st PlaybackState) string {
	if st.Playing {
		return "Play " + p.Title
	}
	return "Select " + p.Title
}
