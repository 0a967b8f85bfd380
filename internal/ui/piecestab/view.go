package piecestab

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/pieces/internal/catalog"
	"github.com/llehouerou/pieces/internal/icons"
	"github.com/llehouerou/pieces/internal/pieces"
	"github.com/llehouerou/pieces/internal/playtime"
	"github.com/llehouerou/pieces/internal/ui"
	"github.com/llehouerou/pieces/internal/ui/render"
	"github.com/llehouerou/pieces/internal/ui/styles"
)

const allMusic = "All Music"

// minTitleWidth keeps room for the title before optional columns are dropped.
const minTitleWidth = 12

// View renders the tab: header, separator, rows and the hint line.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	width := m.Width()

	lines := make([]string, 0, m.Height())
	lines = append(lines, m.renderHeader(width), render.Separator(width))
	lines = append(lines, m.renderRows(width, m.listHeight())...)
	lines = append(lines, m.renderFooter(width))
	return strings.Join(lines, "\n")
}

func backLabel() string {
	return icons.Back() + " " + allMusic
}

// renderHeader shows "All Music" as a back link while a criterion is active.
func (m Model) renderHeader(width int) string {
	s := styles.T().S()
	count := s.Muted.Render(countLabel(len(m.filtered)))

	var left string
	if m.criterion.IsSet() {
		left = s.Header.Render(backLabel()) +
			s.Muted.Render(" / ") +
			s.Title.Render(render.Sanitize(m.criterionLabel()))
	} else {
		left = s.Title.Render(allMusic)
	}
	return render.Fit(render.Row(left, count, width), width)
}

func countLabel(n int) string {
	if n == 1 {
		return "1 piece"
	}
	return fmt.Sprintf("%d pieces", n)
}

// criterionLabel names the criterion: a piece title, an artist name, or the
// raw value when it matches neither.
func (m Model) criterionLabel() string {
	id := string(m.criterion)
	for _, p := range m.all {
		if p.ID == id {
			return p.Title
		}
	}
	if name, ok := m.artists[id]; ok && name != "" {
		return name
	}
	return id
}

func (m Model) renderRows(width, height int) []string {
	lines := make([]string, 0, height)
	if len(m.filtered) == 0 && height > 0 {
		lines = append(lines, render.Fit(styles.T().S().Muted.Render("  No pieces"), width))
	}
	start, end := m.cursor.VisibleRange(len(m.filtered), height)
	for idx := start; idx < end; idx++ {
		lines = append(lines, m.renderRow(m.filtered[idx], idx == m.cursor.Pos(), width))
	}
	for len(lines) < height {
		lines = append(lines, render.EmptyLine(width))
	}
	return lines
}

// renderRow lays out one piece:
//
//	[button][indicator] title  artist        last played  image  play time
func (m Model) renderRow(p catalog.Piece, atCursor bool, width int) string {
	s := styles.T().S()
	st := pieces.Classify(p, m.state)

	style := func(base lipgloss.Style) lipgloss.Style {
		if atCursor && m.IsFocused() {
			return base.Background(styles.T().BgCursor)
		}
		return base
	}

	button := render.EmptyLine(ui.ButtonWidth)
	if pieces.ButtonEnabled(p, m.state) {
		icon := icons.Play()
		if pieces.ShowsStop(p, m.state) {
			icon = icons.Stop()
		}
		button = render.TruncateAndPad(" "+icon, ui.ButtonWidth)
	}

	var indicator string
	switch st {
	case pieces.SelectedPlaying:
		indicator = style(s.Selected).Render(icons.Playing())
	case pieces.SelectedLoading:
		indicator = style(s.Loading).Render(m.spinner.View())
	case pieces.Idle, pieces.SelectedStopped:
	}

	bodyWidth := width - ui.ButtonWidth - ui.IndicatorWidth
	right := m.rowDetails(p)
	if lipgloss.Width(right)+1 > bodyWidth-minTitleWidth {
		right = ""
	}
	leftWidth := bodyWidth - lipgloss.Width(right) - 1

	titleStyle := s.Base
	if st != pieces.Idle {
		titleStyle = s.Selected
	}
	title := render.Truncate(p.Title, leftWidth)
	left := style(titleStyle).Render(title)
	if remaining := leftWidth - lipgloss.Width(title) - 2; remaining > 0 {
		artist := render.Truncate(icons.FormatArtist(m.artists.Name(p.Artist)), remaining)
		left += style(s.Base).Render("  ") + style(s.Muted).Render(artist)
	}

	gap := max(bodyWidth-lipgloss.Width(left)-lipgloss.Width(right), 0)
	body := left + style(s.Base).Render(strings.Repeat(" ", gap)) + style(s.Muted).Render(right)

	return style(s.Button).Render(button) +
		render.Fit(indicator, ui.IndicatorWidth) +
		render.Fit(body, bodyWidth)
}

// rowDetails joins last played, image marker and play time.
func (m Model) rowDetails(p catalog.Piece) string {
	var parts []string
	if at, ok := m.lastPlayed[p.ID]; ok {
		parts = append(parts, humanize.Time(at))
	}
	parts = append(parts, icons.FormatImage(render.Sanitize(p.ImageOrDefault())))
	seconds, known := m.playTimes.Seconds(p.ID)
	if t := playtime.FormatKnown(seconds, known); t != "" {
		parts = append(parts, t)
	}
	return strings.Join(parts, "  ") + " "
}

// renderFooter shows what activating the piece under the cursor does.
func (m Model) renderFooter(width int) string {
	s := styles.T().S()
	p, ok := m.Current()
	if !ok {
		return render.Fit(s.Hint.Render(" No pieces"), width)
	}
	hint := s.Hint.Render(" " + render.Sanitize(pieces.Hint(p, m.state)))
	pos := s.Subtle.Render(fmt.Sprintf("%d/%d ", m.cursor.Pos()+1, len(m.filtered)))
	return render.Fit(render.Row(hint, pos, width), width)
}
