package ui

import "github.com/charmbracelet/lipgloss"

var (
	cPrimary   = lipgloss.Color("62")  // Purple/Blue
	cSecondary = lipgloss.Color("39")  // Cyan
	cGreen     = lipgloss.Color("42")  // Green
	cRed       = lipgloss.Color("196") // Red
	cYellow    = lipgloss.Color("220") // Yellow
	cGray      = lipgloss.Color("240") // Gray

	styleTitle  = lipgloss.NewStyle().Foreground(cSecondary).Bold(true)
	styleDim    = lipgloss.NewStyle().Foreground(cGray)
	styleErr    = lipgloss.NewStyle().Foreground(cRed)
	styleDigTag = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(cPrimary).Bold(true).Padding(0, 1)

	styleStreaming    = lipgloss.NewStyle().Foreground(cGreen)
	styleErrored      = lipgloss.NewStyle().Foreground(cRed)
	styleAwaiting     = lipgloss.NewStyle().Foreground(cYellow)
	styleReconnecting = lipgloss.NewStyle().Foreground(cSecondary)
)
