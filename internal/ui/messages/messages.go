package messages

import (
	"github.com/amir20/logview/internal/history"
)

// HistoryMsg carries the outcome of the single history fetch.
type HistoryMsg struct {
	Response *history.LogResponse
	Err      error
}

// ShowEntryMsg is sent when user wants to see one entry in full
type ShowEntryMsg struct {
	Entry history.LogEntry
}
