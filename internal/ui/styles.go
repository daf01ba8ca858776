package ui

import "github.com/charmbracelet/lipgloss"

// Note: Warp terminal fix is in internal/termfix package, imported first in main.go

var (
	ColorCyan     = lipgloss.Color("#00FFFF")
	ColorGreen    = lipgloss.Color("#00FF00")
	ColorYellow   = lipgloss.Color("#FFFF00")
	ColorRed      = lipgloss.Color("#FF0000")
	ColorMagenta  = lipgloss.Color("#FF00FF")
	ColorBlue     = lipgloss.Color("#5555FF")
	ColorOrange   = lipgloss.Color("#FFA500")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorDarkGray = lipgloss.Color("8") // ANSI 8
)

// TokenColor returns the accent color for a directive token name
func TokenColor(name string) lipgloss.Color {
	switch name {
	case "STATUS":
		return ColorYellow
	case "LOG", "DATE":
		return ColorGreen
	case "COMMENT":
		return ColorCyan
	case "PHASE", "CAT":
		return ColorMagenta
	case "READY":
		return ColorOrange
	default:
		return ColorWhite
	}
}
