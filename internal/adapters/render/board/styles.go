package board

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	student   lipgloss.Style
	detail    lipgloss.Style
	section   lipgloss.Style
	empty     lipgloss.Style
	efficient lipgloss.Style
	improve   lipgloss.Style
	hint      lipgloss.Style
	success   lipgloss.Style
	warning   lipgloss.Style
	cellOpen  lipgloss.Style
	cellDone  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		student:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		section:   lipgloss.NewStyle().MarginTop(1),
		empty:     lipgloss.NewStyle().Faint(true),
		efficient: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		improve:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		success:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		warning:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		cellOpen:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		cellDone:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
	}
}
