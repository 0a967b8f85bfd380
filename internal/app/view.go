// internal/app/view.go
package app

import (
	"github.com/llehouerou/pieces/internal/catalog"
	"github.com/llehouerou/pieces/internal/playback"
	"github.com/llehouerou/pieces/internal/ui/render"
	"github.com/llehouerou/pieces/internal/ui/styles"
)

// View renders the tab above a status line. The prompt replaces the status
// line while open, the help overlay replaces the tab.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return "Loading..."
	}
	bottom := m.Prompt.View()
	if bottom == "" {
		bottom = m.renderStatus()
	}
	if help := m.Help.View(); help != "" {
		return help + "\n" + bottom
	}
	return m.Tab.View() + "\n" + bottom
}

func (m Model) renderStatus() string {
	s := styles.T().S()
	if m.ErrorMsg != "" {
		return render.Fit(s.Error.Render(" "+m.ErrorMsg), m.Width)
	}
	if m.Notice != "" {
		return render.Fit(s.Muted.Render(" "+m.Notice), m.Width)
	}
	return render.Fit(s.Subtle.Render(" "+m.statusText()), m.Width)
}

func (m Model) statusText() string {
	p, ok := m.playback.Selected()
	if !ok {
		return "Nothing selected"
	}
	title := render.Sanitize(p.Title)
	switch playback.StatusOf(m.playback.State()) {
	case playback.StatusBuffering:
		return "Buffering " + title + "..."
	case playback.StatusPlaying:
		return "Playing " + title
	case playback.StatusStopped, playback.StatusIdle:
	}
	return "Selected " + title
}

// Selected returns the selected piece, if any.
func (m Model) Selected() (catalog.Piece, bool) {
	return m.playback.Selected()
}
