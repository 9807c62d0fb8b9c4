package list

import (
	"fmt"

	"github.com/amir20/logview/internal/history"
	"github.com/amir20/logview/internal/ui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

func (m Model) sortToggle(field history.SortField, label string) string {
	if m.state.SortField != field {
		return styles.ButtonStyle.Render(label)
	}
	return styles.ActiveButtonStyle.Render(label + " " + m.state.Direction.Arrow())
}

func (m Model) View() string {
	if m.Loading() {
		spinner := fmt.Sprintf("%s Loading", m.spinner.View())
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, spinner)
	}

	toggles := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.sortToggle(history.SortByTime, "Sort by Time"),
		" ",
		m.sortToggle(history.SortByEvent, "Sort by Event"),
	)

	nextStyle := lo.Ternary(m.keyMap.Next.Enabled(), styles.ButtonStyle, styles.DisabledButtonStyle)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		styles.TitleStyle.Render("Log Viewer"),
		toggles,
		"",
		m.table.View(),
		"",
		nextStyle.Render("Next"),
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.HelpBarStyle.Render(m.help.View(m.keyMap))),
	)
}
