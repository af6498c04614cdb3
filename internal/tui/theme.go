package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha subset.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent  = colorPink
	colorBrand   = colorPink
	colorFocus   = colorLavender
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
)

var (
	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	crumbStyle = lipgloss.NewStyle().
			Foreground(colorOverlay1).
			Background(colorMantle)

	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	statusStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	errorStyle = lipgloss.NewStyle().Foreground(colorError)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	errorBarStyle = lipgloss.NewStyle().
			Foreground(colorMantle).
			Background(colorError).
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	listBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	focusBoxStyle = listBoxStyle.BorderForeground(colorFocus)

	cursorStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	starStyle   = lipgloss.NewStyle().Foreground(colorYellow)
	ownerStyle  = lipgloss.NewStyle().Foreground(colorBlue)
	countStyle  = lipgloss.NewStyle().Foreground(colorPeach)
	labelStyle  = lipgloss.NewStyle().Foreground(colorSubtext0)
	valueStyle  = lipgloss.NewStyle().Foreground(colorInfo)
	moreStyle   = lipgloss.NewStyle().Foreground(colorWarning)
	spinStyle   = lipgloss.NewStyle().Foreground(colorAccent)
	scrollStyle = lipgloss.NewStyle().Foreground(colorOverlay1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	loadedStyle   = lipgloss.NewStyle().Foreground(colorGreen)
)
