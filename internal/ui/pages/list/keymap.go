package list

import "github.com/charmbracelet/bubbles/key"

type sortKeys struct {
	Time  key.Binding
	Event key.Binding
}

type KeyMap struct {
	LineUp   key.Binding
	LineDown key.Binding
	Sort     sortKeys
	Next     key.Binding
	ViewItem key.Binding
	Open     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() KeyMap {
	return KeyMap{
		LineUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "Up"),
		),
		LineDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "Down"),
		),
		Sort: sortKeys{
			Time: key.NewBinding(
				key.WithKeys("t"),
				key.WithHelp("t", "Sort by time"),
			),
			Event: key.NewBinding(
				key.WithKeys("e"),
				key.WithHelp("e", "Sort by event"),
			),
		},
		Next: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n/→", "Next"),
		),
		ViewItem: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Details"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Open source"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Sort.Time, k.Sort.Event, k.Next, k.ViewItem, k.Open, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LineUp, k.LineDown, k.Next},
		{k.Sort.Time, k.Sort.Event},
		{k.ViewItem, k.Open, k.Quit},
	}
}
