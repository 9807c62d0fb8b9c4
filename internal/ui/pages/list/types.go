package list

import (
	"context"

	"github.com/amir20/logview/internal/history"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/sirupsen/logrus"
)

type Model struct {
	ctx         context.Context
	cancel      context.CancelFunc
	fetcher     history.Fetcher
	log         logrus.FieldLogger
	resourceURL string

	state  history.ViewState
	data   *history.LogResponse
	window []history.LogEntry

	table   table.Model
	spinner spinner.Model
	help    help.Model
	keyMap  KeyMap
	width   int
	height  int

	headerHeight int
}

// Options configure a list page.
type Options struct {
	ResourceURL string
	State       history.ViewState
	Log         logrus.FieldLogger
}
