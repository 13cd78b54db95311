package ui

import "github.com/charmbracelet/lipgloss"

// --- Theme Colors ---

var (
	ColorAccent     = lipgloss.Color("#c9a26d") // amber
	ColorSecondary  = lipgloss.Color("#5f8787") // teal
	ColorBackground = lipgloss.Color("#16161d") // dark
	ColorText       = lipgloss.Color("#d4d6da") // main text
	ColorMuted      = lipgloss.Color("#8a8fa3") // muted text
	ColorFresh      = lipgloss.Color("#87af87") // newly generated cells
	ColorError      = lipgloss.Color("#b06161") // errors
	ColorBorder     = lipgloss.Color("#3a3f4d") // borders and rules
)

// --- Reusable Styles ---

var (
	AppTitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	AppSubtitleStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Padding(0, 1)

	SectionTitleFocusedStyle = lipgloss.NewStyle().
					Foreground(ColorBackground).
					Background(ColorAccent).
					Bold(true).
					Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			Foreground(ColorText).
			Align(lipgloss.Center)

	CellCenterStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorAccent).
			Foreground(ColorAccent).
			Bold(true).
			Align(lipgloss.Center)

	CellFreshStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorFresh).
			Foreground(ColorFresh).
			Align(lipgloss.Center)

	RowStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Align(lipgloss.Center)

	RowCenterStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Align(lipgloss.Center)

	RowFreshStyle = lipgloss.NewStyle().
			Foreground(ColorFresh).
			Align(lipgloss.Center)

	RowRuleStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)

	StatusLineStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			PaddingLeft(1)

	ToastStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			PaddingLeft(1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true).
			PaddingLeft(1)
)

// SetAccent overrides the accent color from the `accent` config value.
// Must run before the first render.
func SetAccent(hex string) {
	if hex == "" {
		return
	}
	ColorAccent = lipgloss.Color(hex)
	AppTitleStyle = AppTitleStyle.Foreground(ColorAccent)
	SectionTitleFocusedStyle = SectionTitleFocusedStyle.Background(ColorAccent)
	CellCenterStyle = CellCenterStyle.BorderForeground(ColorAccent).Foreground(ColorAccent)
	RowCenterStyle = RowCenterStyle.Foreground(ColorAccent)
}
