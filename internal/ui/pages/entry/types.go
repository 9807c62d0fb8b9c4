package entry

import (
	"github.com/amir20/logview/internal/history"
)

type Model struct {
	width  int
	height int
	entry  history.LogEntry
}
