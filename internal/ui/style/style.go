// Package style provides shared UI styling primitives for consistent
// visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Green  = lipgloss.Color("2")
	Red    = lipgloss.Color("1")
	Yellow = lipgloss.Color("3")
	Slate  = lipgloss.Color("8")
)

// Styles.
var (
	Success = lipgloss.NewStyle().Foreground(Green).Bold(true)
	Failure = lipgloss.NewStyle().Foreground(Red).Bold(true)
	Notice  = lipgloss.NewStyle().Foreground(Yellow).Bold(true)
	Faint   = lipgloss.NewStyle().Foreground(Green).Faint(true)
	Subtle  = lipgloss.NewStyle().Foreground(Slate)
)
