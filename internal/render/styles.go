// Package render formats league data for the terminal using lipgloss.
// Colors degrade to plain text when output is not a terminal.
package render

import "github.com/charmbracelet/lipgloss"

var (
	PrimaryColor = lipgloss.Color("#A78BFA") // Purple
	SuccessColor = lipgloss.Color("#10B981") // Green
	WarningColor = lipgloss.Color("#F59E0B") // Amber
	ErrorColor   = lipgloss.Color("#F87171") // Red
	MutedColor   = lipgloss.Color("#9CA3AF") // Gray
	BorderColor  = lipgloss.Color("#6B7280") // Gray

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor)

	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(BorderColor)

	Success = lipgloss.NewStyle().Foreground(SuccessColor)
	Warning = lipgloss.NewStyle().Foreground(WarningColor)
	Failure = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted   = lipgloss.NewStyle().Foreground(MutedColor)
)

// Status markers for per-team results.
const (
	MarkOK   = "✓"
	MarkFail = "✗"
)
