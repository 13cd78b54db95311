package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	hintKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#16161d")).
			Background(lipgloss.Color("#8a8fa3")).
			Bold(true).
			Padding(0, 1)
	hintDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8a8fa3"))
	hintSepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3a3f4d"))
	statusBarStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingTop(1)
)

// Hint formats a single keybind hint like "[tab] focus".
func Hint(key, desc string) string {
	return hintKeyStyle.Render(key) + " " + hintDescStyle.Render(desc)
}

// StatusBar renders the bottom hint bar on a single row, dropping trailing
// hints that do not fit the width. width <= 0 renders everything.
func StatusBar(hints []string, width int) string {
	sep := hintSepStyle.Render(" · ")
	sepWidth := lipgloss.Width(sep)

	var parts []string
	used := 0
	for _, h := range hints {
		w := lipgloss.Width(h)
		if len(parts) > 0 {
			w += sepWidth
		}
		if width > 0 && used+w > width-2 {
			break
		}
		parts = append(parts, h)
		used += w
	}
	return statusBarStyle.Render(strings.Join(parts, sep))
}
