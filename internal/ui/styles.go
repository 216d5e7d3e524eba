package ui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Title   lipgloss.Style
	Cursor  lipgloss.Style
	Label   lipgloss.Style
	Struck  lipgloss.Style
	Marker  lipgloss.Style
	Delete  lipgloss.Style
	Empty   lipgloss.Style
	Status  lipgloss.Style
	Error   lipgloss.Style
	Modal   lipgloss.Style
	Help    lipgloss.Style
	HelpKey lipgloss.Style
}

func defaultStyles() styles {
	subtle := lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	highlight := lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	return styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(highlight).MarginBottom(1),
		Cursor:  lipgloss.NewStyle().Foreground(highlight).Bold(true),
		Label:   lipgloss.NewStyle(),
		Struck:  lipgloss.NewStyle().Strikethrough(true).Foreground(subtle),
		Marker:  lipgloss.NewStyle().Foreground(highlight),
		Delete:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Empty:   lipgloss.NewStyle().Foreground(subtle).Italic(true),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Modal:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(highlight).Padding(0, 1),
		Help:    lipgloss.NewStyle().Foreground(subtle),
		HelpKey: lipgloss.NewStyle().Foreground(subtle).Bold(true),
	}
}
