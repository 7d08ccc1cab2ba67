package main

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// ---------------------------------------------------------------------------

const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(colorOverlay1)
	statusStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	errorStyle  = lipgloss.NewStyle().Foreground(colorRed)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 1)

	monthTitleStyle = lipgloss.NewStyle().Foreground(colorLavender).Bold(true)
	weekdayStyle    = lipgloss.NewStyle().Foreground(colorOverlay0)

	dayStyle         = lipgloss.NewStyle().Foreground(colorText)
	dayPaddingStyle  = lipgloss.NewStyle().Foreground(colorSurface1)
	dayDisabledStyle = lipgloss.NewStyle().Foreground(colorOverlay0).Strikethrough(true)
	daySelectedStyle = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0)
	dayEndpointStyle = lipgloss.NewStyle().Foreground(colorMantle).Background(colorBlue).Bold(true)
	dayFocusedStyle  = lipgloss.NewStyle().Reverse(true).Bold(true)
	dayPreviewStyle  = lipgloss.NewStyle().Foreground(colorGreen).Background(colorSurface0)
	dayBadStyle      = lipgloss.NewStyle().Foreground(colorRed).Background(colorSurface0)
)
