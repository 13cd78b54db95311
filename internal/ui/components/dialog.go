package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3a3f4d")).
			Padding(1, 2)
	dialogTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#c9a26d")).
				Bold(true)
	dialogBodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8a8fa3"))
)

// Dialog renders a titled overlay box, one body row per line.
func Dialog(title string, rows []string, width int) string {
	header := dialogTitleStyle.Render(title)
	body := dialogBodyStyle.Render(strings.Join(rows, "\n"))
	style := dialogStyle
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(header + "\n\n" + body)
}

// KeyRow formats a help dialog row like "tab    switch focus".
func KeyRow(key, desc string) string {
	const col = 12
	pad := col - len(key)
	if pad < 1 {
		pad = 1
	}
	return key + strings.Repeat(" ", pad) + desc
}
