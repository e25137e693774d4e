package components

import (
	"github.com/theirongolddev/callcost/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// InputField renders a labeled text input with a hint line underneath.
// input is the already-rendered textinput view.
func InputField(label, input, hint string, focused bool, outerWidth int) string {
	t := theme.Active

	border := t.Border
	labelFg := t.TextPrimary
	if focused {
		border = t.BorderAccent
		labelFg = t.Accent
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		BorderBackground(t.Background).
		Background(t.Surface).
		Width(contentWidth(outerWidth)).
		Padding(0, 1)

	labelStyle := lipgloss.NewStyle().
		Foreground(labelFg).
		Background(t.Surface).
		Bold(true)

	hintStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	return boxStyle.Render(
		labelStyle.Render(label) + "\n" +
			input + "\n" +
			hintStyle.Render(hint),
	)
}
