package entry

import (
	"fmt"

	"github.com/amir20/logview/internal/ui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

func (m Model) View() string {
	parsed := styles.RedStyle.Render("unrecognized format")
	if ts, ok := m.entry.Timestamp(); ok {
		parsed = fmt.Sprintf("%s (%s)", ts.Format("Mon, 02 Jan 2006 15:04:05 MST"), humanize.Time(ts))
	}

	eventWidth := m.width - styles.LabelStyle.GetWidth() - 2
	event := lipgloss.NewStyle().Width(max(eventWidth, 20)).Render(m.entry.Event)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.TitleStyle.Render("Log Entry"),
		lipgloss.JoinHorizontal(lipgloss.Top, styles.LabelStyle.Render("Time"), m.entry.Time),
		lipgloss.JoinHorizontal(lipgloss.Top, styles.LabelStyle.Render("Parsed"), parsed),
		lipgloss.JoinHorizontal(lipgloss.Top, styles.LabelStyle.Render("Event"), event),
	)

	return lipgloss.NewStyle().Width(m.width).Height(m.height).Padding(0, 1).Render(content)
}

// StatusBar implements the StatusBar interface
func (m Model) StatusBar() string {
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, "Press ESC/left to go back | Press q to quit")
}
