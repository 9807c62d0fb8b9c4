package list

import (
	"context"
	"io"

	"github.com/amir20/logview/internal/history"
	"github.com/amir20/logview/internal/ui/messages"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

const timeColumnWidth = 30

// chromeHeight counts the lines View renders around the table: title and
// its margin, toggles, two spacers, Next and the help bar.
const chromeHeight = 7

func NewModel(ctx context.Context, fetcher history.Fetcher, opts Options) Model {
	ctx, cancel := context.WithCancel(ctx)

	log := opts.Log
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	state := opts.State
	if state.PageSize <= 0 {
		state = history.DefaultViewState()
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)

	tbl := table.New(
		table.WithColumns([]table.Column{
			{Title: "Time", Width: timeColumnWidth},
			{Title: "Event", Width: 40},
		}),
		table.WithFocused(true),
		table.WithStyles(styles),
	)
	headerHeight := lipgloss.Height(styles.Header.Render("Time"))
	tbl.SetHeight(state.PageSize + headerHeight)

	return Model{
		headerHeight: headerHeight,
		ctx:         ctx,
		cancel:      cancel,
		fetcher:     fetcher,
		log:         log,
		resourceURL: opts.ResourceURL,
		state:       state,
		table:       tbl,
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:        help.New(),
		keyMap:      defaultKeyMap(),
	}
}

func fetchHistory(ctx context.Context, fetcher history.Fetcher) tea.Cmd {
	return func() tea.Msg {
		resp, err := fetcher.Fetch(ctx)
		return messages.HistoryMsg{Response: resp, Err: err}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		fetchHistory(m.ctx, m.fetcher),
	)
}

// Destroy cancels an in-flight fetch. Results arriving afterwards are dropped.
func (m Model) Destroy() {
	m.cancel()
}

func (m Model) Loading() bool {
	return m.data == nil
}

func (m Model) State() history.ViewState {
	return m.state
}

// Window is the page of entries currently displayed.
func (m Model) Window() []history.LogEntry {
	return m.window
}
