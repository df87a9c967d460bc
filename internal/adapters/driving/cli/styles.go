package cli

import "github.com/charmbracelet/lipgloss"

// Output styles for command results.
var (
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
	styleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))
	styleMuted   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	styleHeader  = lipgloss.NewStyle().Bold(true)
)
