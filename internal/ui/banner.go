package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerArt = `
 ██████  ███████ ███████ ██
 ██   ██ ██      ██      ██
 ██████  █████   █████   ██
 ██   ██ ██      ██      ██
 ██   ██ ███████ ███████ ███████`

const bannerSubtitle = "Infinite snap-scrolling windows for the terminal"

// RenderBanner returns the styled ASCII banner with its subtitle.
func RenderBanner() string {
	art := strings.TrimPrefix(bannerArt, "\n")

	maxWidth := 0
	for _, line := range strings.Split(art, "\n") {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}

	blockWidth := maxWidth
	if w := lipgloss.Width(bannerSubtitle); w > blockWidth {
		blockWidth = w
	}

	artStyle := lipgloss.NewStyle().Foreground(ColorAccent)
	subtitleStyle := lipgloss.NewStyle().
		Foreground(ColorMuted).
		Width(blockWidth).
		Align(lipgloss.Center)
	ruleStyle := lipgloss.NewStyle().
		Foreground(ColorBorder).
		Width(blockWidth).
		Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")
	for _, line := range strings.Split(art, "\n") {
		b.WriteString(artStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(bannerSubtitle))
	b.WriteString("\n")
	b.WriteString(ruleStyle.Render(strings.Repeat("─", lipgloss.Width(bannerSubtitle))))
	b.WriteString("\n")
	return b.String()
}
