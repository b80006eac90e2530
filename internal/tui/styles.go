package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the quiz screens.
type Styles struct {
	Title     lipgloss.Style
	Countdown lipgloss.Style
	Prompt    lipgloss.Style
	Option    lipgloss.Style
	Correct   lipgloss.Style
	Wrong     lipgloss.Style
	Muted     lipgloss.Style
	Hint      lipgloss.Style
	Star      lipgloss.Style
	Box       lipgloss.Style
}

// DefaultStyles returns the palette of the landing page.
func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		Countdown: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#991B1B")).Background(lipgloss.Color("#FEE2E2")).Padding(0, 1),
		Prompt:    lipgloss.NewStyle().Bold(true),
		Option:    lipgloss.NewStyle().PaddingLeft(2),
		Correct:   lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("#22C55E")).Bold(true),
		Wrong:     lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("#EF4444")).Bold(true),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		Hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("#1E40AF")).Italic(true),
		Star:      lipgloss.NewStyle().Foreground(lipgloss.Color("#EAB308")),
		Box:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
	}
}
