package history

import (
	"strings"
	"time"
)

type LogResponse struct {
	Numbers []int      `json:"numbers"`
	Req     string     `json:"req"`
	History []LogEntry `json:"history"`
}

type LogEntry struct {
	Time  string `json:"time"`
	Event string `json:"event"`
}

// Layouts accepted for LogEntry.Time. Zone-less values are read as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

// Timestamp parses the raw time string. ok is false when no known layout matches.
func (e LogEntry) Timestamp() (t time.Time, ok bool) {
	raw := strings.TrimSpace(e.Time)
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.UTC(), true
		}
	}
	return time.Time{}, false
}
