package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	ColorHeader = lipgloss.Color("12")
	ColorLabel  = lipgloss.Color("245")
	ColorValue  = lipgloss.Color("15")
	ColorMuted  = lipgloss.Color("240")
)

//nolint:gochecknoglobals // Immutable styles shared by the views.
var (
	titleStyle    = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(ColorLabel)
	valueStyle    = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
	dividerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ColorMuted).
			BorderBottom(true)
)
