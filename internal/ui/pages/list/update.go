package list

import (
	"context"
	"errors"

	"github.com/amir20/logview/internal/history"
	"github.com/amir20/logview/internal/ui/messages"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/browser"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

var errEmptyResponse = errors.New("fetcher returned no response")

// fitTable shrinks the table viewport so the whole page fits in the
// terminal. The table scrolls when the page holds more rows than fit.
func (m Model) fitTable() Model {
	rows := m.state.PageSize
	if m.height > 0 {
		rows = max(min(rows, m.height-chromeHeight-m.headerHeight), 1)
	}
	m.table.SetHeight(rows + m.headerHeight)
	return m
}

func (m Model) updateInternalRows() Model {
	if m.data == nil {
		return m
	}

	m.window = m.state.Window(m.data.History)

	cols := m.table.Columns()
	rows := lo.Map(m.window, func(e history.LogEntry, _ int) table.Row {
		return table.Row{
			runewidth.Truncate(e.Time, cols[0].Width, "…"),
			runewidth.Truncate(e.Event, cols[1].Width, "…"),
		}
	})
	m.table.SetRows(rows)
	if len(rows) > 0 && m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}

	m.keyMap.Next.SetEnabled(m.state.CanAdvance(len(m.data.History)))

	return m
}

func (m Model) apply(action history.Action) Model {
	m.state = history.Reduce(m.state, action)
	return m.updateInternalRows()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.HistoryMsg:
		if m.ctx.Err() != nil {
			m.log.Debug("discarding history that arrived after the page was closed")
			return m, nil
		}
		if msg.Err == nil && msg.Response == nil {
			msg.Err = errEmptyResponse
		}
		if msg.Err != nil {
			if errors.Is(msg.Err, context.Canceled) {
				m.log.WithError(msg.Err).Debug("history fetch cancelled")
			} else {
				m.log.WithError(msg.Err).WithField("url", m.resourceURL).Error("Error fetching data")
			}
			return m, nil
		}
		m.data = msg.Response
		m = m.updateInternalRows()
		m.log.WithFields(logrus.Fields{
			"entries": len(m.data.History),
			"pages":   history.PageCount(len(m.data.History), m.state.PageSize),
		}).Info("log history loaded")
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.table.SetWidth(msg.Width)
		cols := m.table.Columns()
		// cells carry one column of padding on each side
		cols[1].Width = max(msg.Width-timeColumnWidth-4, 10)
		m.table.SetColumns(cols)

		m = m.fitTable()
		m = m.updateInternalRows()
		return m, nil

	case tea.KeyMsg:
		if m.Loading() {
			break
		}
		switch {
		case key.Matches(msg, m.keyMap.Sort.Time, m.keyMap.Sort.Event):
			field := history.SortByTime
			if key.Matches(msg, m.keyMap.Sort.Event) {
				field = history.SortByEvent
			}
			return m.apply(history.ToggleSort{Field: field}), nil

		case key.Matches(msg, m.keyMap.Next):
			return m.apply(history.NextPage{Total: len(m.data.History)}), nil

		case key.Matches(msg, m.keyMap.ViewItem):
			cursor := m.table.Cursor()
			if cursor >= 0 && cursor < len(m.window) {
				selected := m.window[cursor]
				return m, func() tea.Msg {
					return messages.ShowEntryMsg{Entry: selected}
				}
			}
			return m, nil

		case key.Matches(msg, m.keyMap.Open):
			if err := browser.OpenURL(m.resourceURL); err != nil {
				m.log.WithError(err).Warn("could not open browser")
			}
			return m, nil
		}
	}

	cmds := []tea.Cmd{}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	cmds = append(cmds, cmd)

	if m.Loading() {
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}
