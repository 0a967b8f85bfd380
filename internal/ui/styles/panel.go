package styles

import "github.com/charmbracelet/lipgloss"

var (
	unfocusedBorderColor = lipgloss.Color("240")
	focusedBorderColor   = lipgloss.Color("39")

	unfocusedPromptStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(unfocusedBorderColor).
				Padding(0, 1)

	focusedPromptStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(focusedBorderColor).
				Padding(0, 1)
)

// PromptStyle returns the border style for the criterion prompt.
func PromptStyle(focused bool) lipgloss.Style {
	if focused {
		return focusedPromptStyle
	}
	return unfocusedPromptStyle
}
