package ui

import (
	"context"

	"github.com/amir20/logview/internal/history"
	"github.com/amir20/logview/internal/ui/messages"
	"github.com/amir20/logview/internal/ui/pages/entry"
	"github.com/amir20/logview/internal/ui/pages/list"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type PageType int

const (
	List PageType = iota
	Entry
)

type App struct {
	currentPage PageType
	listPage    list.Model
	entryPage   entry.Model
	quitKey     key.Binding
	backKey     key.Binding
	width       int
	height      int
}

var (
	defaultQuitKey = key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	)
	defaultBackKey = key.NewBinding(
		key.WithKeys("esc", "left"),
		key.WithHelp("esc/left", "Go back"),
	)
)

func NewApp(ctx context.Context, fetcher history.Fetcher, opts list.Options) App {
	return App{
		currentPage: List,
		listPage:    list.NewModel(ctx, fetcher, opts),
		quitKey:     defaultQuitKey,
		backKey:     defaultBackKey,
	}
}

func (a App) activePage() tea.Model {
	switch a.currentPage {
	case List:
		return a.listPage
	case Entry:
		return a.entryPage
	}
	return nil
}

func (a App) CurrentPage() PageType {
	return a.currentPage
}

func (a App) Init() tea.Cmd {
	return a.activePage().Init()
}

// Close releases every page's resources.
func (a App) Close() {
	for _, page := range []tea.Model{a.listPage, a.entryPage} {
		if destroyable, ok := page.(Destroy); ok {
			destroyable.Destroy()
		}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.ShowEntryMsg:
		a.currentPage = Entry
		a.entryPage = entry.NewModel(msg.Entry, a.width, a.height-1)
		return a, a.entryPage.Init()

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

		// The list page keeps its layout while the entry page is shown.
		model, _ := a.listPage.Update(msg)
		a.listPage = model.(list.Model)

		if a.currentPage == Entry {
			// Entry renders a status bar below its content
			msg.Height--
			model, cmd := a.entryPage.Update(msg)
			a.entryPage = model.(entry.Model)
			return a, cmd
		}
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.quitKey):
			a.Close()
			return a, tea.Quit
		case key.Matches(msg, a.backKey) && a.currentPage == Entry:
			a.currentPage = List
			return a, nil
		}
	}

	// Delegate to current page
	var cmd tea.Cmd
	switch a.currentPage {
	case List:
		var model tea.Model
		model, cmd = a.listPage.Update(msg)
		a.listPage = model.(list.Model)
	case Entry:
		var model tea.Model
		model, cmd = a.entryPage.Update(msg)
		a.entryPage = model.(entry.Model)
	}

	return a, cmd
}

func (a App) View() string {
	content := a.activePage().View()
	if statusBarPage, ok := a.activePage().(StatusBar); ok {
		return lipgloss.JoinVertical(lipgloss.Left, content, statusBarPage.StatusBar())
	}

	return content
}
