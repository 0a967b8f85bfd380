// Package helpbindings provides a scrollable overlay listing the key bindings.
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/pieces/internal/keymap"
	"github.com/llehouerou/pieces/internal/ui"
	"github.com/llehouerou/pieces/internal/ui/render"
	"github.com/llehouerou/pieces/internal/ui/styles"
)

// categoryOrder defines the display order of binding contexts.
var categoryOrder = []string{"global", "pieces"}

var categoryLabels = map[string]string{
	"global": "Global",
	"pieces": "Pieces",
}

// chrome is the title, blank lines and footer around the bindings.
const chrome = 4

// Model holds the state of the help overlay.
type Model struct {
	ui.Base
	bindings     []keymap.Binding
	active       bool
	scrollOffset int
}

// New creates a help overlay listing all contexts.
func New() Model {
	m := Model{}
	for _, ctx := range categoryOrder {
		m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
	}
	return m
}

// Active reports whether the overlay is shown.
func (m Model) Active() bool {
	return m.active
}

// Open shows the overlay scrolled to the top.
func (m *Model) Open() {
	m.active = true
	m.scrollOffset = 0
}

// Update handles keys while the overlay is shown.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.active {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		m.active = false
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		m.scrollOffset = min(m.scrollOffset+1, m.maxScroll())
	case "k", "up":
		m.scrollOffset = max(m.scrollOffset-1, 0)
	}
	return m, nil
}

// View renders the overlay over the whole component area.
func (m Model) View() string {
	if !m.active || m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()

	lines := m.contentLines()
	end := min(m.scrollOffset+m.visibleHeight(), len(lines))
	visible := lines[min(m.scrollOffset, end):end]

	out := make([]string, 0, m.Height())
	out = append(out, s.Title.Render(" Help"), "")
	out = append(out, visible...)
	for len(out) < m.Height()-1 {
		out = append(out, "")
	}
	out = append(out, s.Subtle.Render(" "+m.footer()))

	for i, line := range out {
		out[i] = render.Fit(line, m.Width())
	}
	return strings.Join(out[:m.Height()], "\n")
}

func (m Model) contentLines() []string {
	s := styles.T().S()
	keyStyle := s.Button.Bold(true)
	headerStyle := s.Header

	maxKeyWidth := 0
	for _, b := range m.bindings {
		maxKeyWidth = max(maxKeyWidth, lipgloss.Width(keyLabel(b)))
	}

	var lines []string
	current := ""
	for _, b := range m.bindings {
		if b.Context != current {
			if current != "" {
				lines = append(lines, "")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			lines = append(lines,
				" "+headerStyle.Render(label),
				" "+s.Subtle.Render(render.Separator(maxKeyWidth+15)))
			current = b.Context
		}
		lines = append(lines, " "+keyStyle.Render(render.Pad(keyLabel(b), maxKeyWidth))+"  "+s.Base.Render(b.Description))
	}
	return lines
}

// keyLabel lists the keys of a binding, showing the space bar by name.
func keyLabel(b keymap.Binding) string {
	keys := make([]string, 0, len(b.Keys))
	for _, k := range b.Keys {
		if k == " " {
			continue
		}
		keys = append(keys, k)
	}
	return strings.Join(keys, ", ")
}

func (m Model) footer() string {
	if m.maxScroll() == 0 {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

func (m Model) visibleHeight() int {
	return max(m.Height()-chrome, 1)
}

func (m Model) maxScroll() int {
	return max(len(m.contentLines())-m.visibleHeight(), 0)
}
