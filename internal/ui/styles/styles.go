package styles

import "github.com/charmbracelet/lipgloss"

var RedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
var HelpBarStyle = lipgloss.NewStyle().Padding(0, 1)
var TitleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
var LabelStyle = lipgloss.NewStyle().Bold(true).Width(8)
var ButtonStyle = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4"))
var ActiveButtonStyle = ButtonStyle.Background(lipgloss.Color("2"))
var DisabledButtonStyle = ButtonStyle.Foreground(lipgloss.Color("8")).Background(lipgloss.Color("0"))
