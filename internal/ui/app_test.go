package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/amir20/logview/internal/history"
	"github.com/amir20/logview/internal/ui/messages"
	"github.com/amir20/logview/internal/ui/pages/list"

	tea "github.com/charmbracelet/bubbletea"
)

type stubFetcher struct {
	resp *history.LogResponse
}

func (s stubFetcher) Fetch(ctx context.Context) (*history.LogResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.resp, nil
}

func step(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	next, cmd := a.Update(msg)
	app, ok := next.(App)
	if !ok {
		t.Fatalf("expected App, got %T", next)
	}
	return app, cmd
}

func loadedApp(t *testing.T) App {
	t.Helper()
	resp := &history.LogResponse{History: []history.LogEntry{
		{Time: "2024-01-02T00:00Z", Event: "b"},
		{Time: "2024-01-01T00:00Z", Event: "a"},
	}}
	a := NewApp(context.Background(), stubFetcher{resp: resp}, list.Options{State: history.DefaultViewState()})
	a, _ = step(t, a, tea.WindowSizeMsg{Width: 100, Height: 30})
	a, _ = step(t, a, messages.HistoryMsg{Response: resp})
	return a
}

func TestApp_StartsLoading(t *testing.T) {
	a := NewApp(context.Background(), stubFetcher{}, list.Options{})
	if a.Init() == nil {
		t.Fatal("expected init to start the fetch")
	}
	if !strings.Contains(a.View(), "Loading") {
		t.Error("expected loading placeholder before the fetch resolves")
	}
}

func TestApp_EntryNavigation(t *testing.T) {
	a := loadedApp(t)
	if !strings.Contains(a.View(), "Log Viewer") {
		t.Fatal("expected list page")
	}

	a, cmd := step(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected enter to produce a command")
	}
	a, _ = step(t, a, cmd())
	if a.CurrentPage() != Entry {
		t.Fatalf("expected entry page, got %v", a.CurrentPage())
	}
	view := a.View()
	if !strings.Contains(view, "Log Entry") || !strings.Contains(view, "ESC") {
		t.Errorf("expected entry page with status bar, got %q", view)
	}

	a, _ = step(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.CurrentPage() != List {
		t.Fatalf("expected list page after esc, got %v", a.CurrentPage())
	}
}

func TestApp_QuitCancelsFetch(t *testing.T) {
	a := NewApp(context.Background(), stubFetcher{resp: &history.LogResponse{}}, list.Options{})

	a, cmd := step(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}

	a, _ = step(t, a, messages.HistoryMsg{Response: &history.LogResponse{History: []history.LogEntry{}}})
	if !strings.Contains(a.View(), "Loading") {
		t.Error("a result arriving after quit must not be applied")
	}
}
