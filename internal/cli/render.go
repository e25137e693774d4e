package cli

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/callcost/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func styles() (title, header, value, dim lipgloss.Style) {
	t := theme.Active
	title = lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary).Align(lipgloss.Center)
	header = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	value = lipgloss.NewStyle().Foreground(t.TextPrimary)
	dim = lipgloss.NewStyle().Foreground(t.TextDim)
	return title, header, value, dim
}

// Table is a bordered two-column report: a label column and a
// right-aligned value column. A row of just "---" draws a separator.
type Table struct {
	Title string
	Rows  [][]string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	titleStyle, _, _, _ := styles()
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Active.Border).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders t with box-drawing borders.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 {
		return ""
	}
	_, headerStyle, valueStyle, dimStyle := styles()

	var labelW, valueW int
	for _, row := range t.Rows {
		if len(row) > 0 && row[0] != "---" {
			labelW = max(labelW, lipgloss.Width(row[0]))
		}
		if len(row) > 1 {
			valueW = max(valueW, lipgloss.Width(row[1]))
		}
	}

	rule := func(left, mid, right string) string {
		return dimStyle.Render(left+strings.Repeat("─", labelW+2)+mid+strings.Repeat("─", valueW+2)+right) + "\n"
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(rule("╭", "┬", "╮"))
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			b.WriteString(rule("├", "┼", "┤"))
			continue
		}
		var label, value string
		if len(row) > 0 {
			label = row[0]
		}
		if len(row) > 1 {
			value = row[1]
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString(valueStyle.Render(fmt.Sprintf(" %-*s ", labelW, label)))
		b.WriteString(dimStyle.Render("│"))
		b.WriteString(valueStyle.Render(fmt.Sprintf(" %*s ", valueW, value)))
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}
	b.WriteString(rule("╰", "┴", "╯"))

	return b.String()
}
