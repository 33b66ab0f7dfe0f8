package commands

import "github.com/charmbracelet/lipgloss"

var (
	styleOK     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	styleWarn   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	styleError  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	styleMuted  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
)

const (
	symbolOK    = "✓"
	symbolWarn  = "⚠"
	symbolError = "✗"
)

func renderOK(msg string) string {
	return styleOK.Render(symbolOK) + " " + msg
}

func renderWarn(msg string) string {
	return styleWarn.Render(symbolWarn) + " " + msg
}

func renderError(msg string) string {
	return styleError.Render(symbolError) + " " + msg
}
