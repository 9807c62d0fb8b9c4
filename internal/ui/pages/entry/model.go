package entry

import (
	"github.com/amir20/logview/internal/history"

	tea "github.com/charmbracelet/bubbletea"
)

func NewModel(entry history.LogEntry, width, height int) Model {
	return Model{
		entry:  entry,
		width:  width,
		height: height,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
