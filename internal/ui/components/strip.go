package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	gaugeTrackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3a3f4d"))
	gaugeMarkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c9a26d")).
			Bold(true)
)

// VerticalStrip lays out pre-rendered cells top to bottom and crops the
// result to the visible window. cells must include the sentinel cell on
// each end and each cell must render to exactly cellHeight rows.
// offsetRows is the drag offset quantized to whole rows: positive values
// shift the view toward later cells, and the excursion never exceeds one
// cell in either direction, so the sentinels absorb it entirely.
func VerticalStrip(cells []string, cellHeight, visibleCount, offsetRows int) string {
	if len(cells) == 0 || cellHeight < 1 || visibleCount < 1 {
		return ""
	}

	rows := make([]string, 0, len(cells)*cellHeight)
	for _, cell := range cells {
		lines := strings.Split(cell, "\n")
		for i := 0; i < cellHeight; i++ {
			if i < len(lines) {
				rows = append(rows, lines[i])
			} else {
				rows = append(rows, "")
			}
		}
	}

	start := cellHeight + offsetRows
	if start < 0 {
		start = 0
	}
	if max := len(rows) - visibleCount*cellHeight; start > max {
		start = max
	}
	if start < 0 {
		return strings.Join(rows, "\n")
	}
	return strings.Join(rows[start:start+visibleCount*cellHeight], "\n")
}

// HorizontalStrip lays out the visible cells side by side. Horizontal
// travel is quantized to whole items in a terminal, so callers pass only
// the visible cells and report sub-item progress through DragGauge.
func HorizontalStrip(cells []string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// DragGauge renders uncommitted drag progress as a marker on a track.
// progress is the drag offset as a fraction of one item, in [-1, 1]; zero
// centers the marker.
func DragGauge(progress float64, width int) string {
	if width < 3 {
		width = 3
	}
	if progress > 1 {
		progress = 1
	}
	if progress < -1 {
		progress = -1
	}

	center := (width - 1) / 2
	idx := center + int(math.Round(progress*float64(center)))
	if idx < 0 {
		idx = 0
	}
	if idx > width-1 {
		idx = width - 1
	}

	left := strings.Repeat("─", idx)
	right := strings.Repeat("─", width-idx-1)
	return gaugeTrackStyle.Render(left) + gaugeMarkStyle.Render("●") + gaugeTrackStyle.Render(right)
}
