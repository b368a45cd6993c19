package ui

import "github.com/charmbracelet/lipgloss"

var (
	userMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				Bold(true)

	assistantMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	toolNoteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("215"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	statusThinkingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("220"))

	statusReadyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))

	inputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)
