// Package criterionprompt is the one-line prompt used to type a piece id or
// an artist id. Known ids are offered as tab completions.
package criterionprompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/pieces/internal/catalog"
	"github.com/llehouerou/pieces/internal/ui"
	"github.com/llehouerou/pieces/internal/ui/render"
	"github.com/llehouerou/pieces/internal/ui/styles"
)

const hint = "tab complete · enter apply · esc cancel"

// Model is the criterion prompt.
type Model struct {
	ui.Base
	input  textinput.Model
	active bool
}

// New creates a prompt completing the ids of the given catalog.
func New(cat catalog.Catalog) Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "piece or artist id"
	ti.CharLimit = 128
	ti.ShowSuggestions = true
	ti.SetSuggestions(suggestions(cat))
	return Model{input: ti}
}

// suggestions returns artist ids followed by piece ids, without duplicates.
func suggestions(cat catalog.Catalog) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(id string) {
		if id != "" && !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, p := range cat.Pieces {
		add(p.Artist)
	}
	for _, p := range cat.Pieces {
		add(p.ID)
	}
	return out
}

// Active reports whether the prompt is open.
func (m Model) Active() bool {
	return m.active
}

// Open shows the prompt prefilled with the current criterion.
func (m *Model) Open(current catalog.Criterion) tea.Cmd {
	m.active = true
	m.input.SetValue(string(current))
	m.input.CursorEnd()
	return tea.Batch(m.input.Focus(), textinput.Blink)
}

// Close hides the prompt.
func (m *Model) Close() {
	m.active = false
	m.input.Blur()
	m.input.Reset()
}

// Update handles keys while the prompt is open.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.Close()
			return m, func() tea.Msg {
				return ActionMsg(Result{Canceled: true})
			}
		case "enter":
			c := catalog.Criterion(strings.TrimSpace(m.input.Value()))
			m.Close()
			return m, func() tea.Msg {
				return ActionMsg(Result{Criterion: c})
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt on a single line, or "" when closed.
func (m Model) View() string {
	if !m.active || m.Width() == 0 {
		return ""
	}
	s := styles.T().S()
	m.input.Width = max(m.Width()-len(hint)-4, 10)
	return render.Fit(render.Row(m.input.View(), s.Subtle.Render(hint)+" ", m.Width()), m.Width())
}
