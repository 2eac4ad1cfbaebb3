package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style

	Tab       lipgloss.Style
	ActiveTab lipgloss.Style

	Label         lipgloss.Style
	Focused       lipgloss.Style
	Warn          lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style

	Result lipgloss.Style
	Value  lipgloss.Style
	Error  lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),

		Tab:       lipgloss.NewStyle().Padding(0, 2).Faint(true),
		ActiveTab: lipgloss.NewStyle().Padding(0, 2).Bold(true).Underline(true).Foreground(lipgloss.Color("42")),

		Label:         lipgloss.NewStyle().PaddingLeft(2),
		Focused:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Warn:          lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("214")),
		Button:        lipgloss.NewStyle().Padding(0, 2).BorderStyle(lipgloss.NormalBorder()),
		ButtonFocused: lipgloss.NewStyle().Padding(0, 2).BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("42")).Bold(true),

		Result: lipgloss.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("42")),
		Value: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Error: lipgloss.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")),
	}
}
