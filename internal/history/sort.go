package history

import (
	"fmt"
	"slices"
	"strings"
)

type SortField string

const (
	SortByTime  SortField = "time"
	SortByEvent SortField = "event"
)

func ParseSortField(s string) (SortField, error) {
	switch SortField(strings.ToLower(s)) {
	case SortByTime:
		return SortByTime, nil
	case SortByEvent:
		return SortByEvent, nil
	}
	return "", fmt.Errorf("unknown sort field %q", s)
}

func (f SortField) Valid() bool {
	return f == SortByTime || f == SortByEvent
}

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(s)) {
	case Ascending:
		return Ascending, nil
	case Descending:
		return Descending, nil
	}
	return "", fmt.Errorf("unknown sort direction %q", s)
}

func (d Direction) Valid() bool {
	return d == Ascending || d == Descending
}

func (d Direction) Flip() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// Arrow is the indicator glyph shown next to the active sort toggle.
func (d Direction) Arrow() string {
	if d == Ascending {
		return "↑"
	}
	return "↓"
}

// Compare returns an ascending comparator for field. Entries whose time
// cannot be parsed order before all others. Unknown fields sort by time.
func Compare(field SortField) func(a, b LogEntry) int {
	switch field {
	case SortByEvent:
		return func(a, b LogEntry) int {
			return strings.Compare(a.Event, b.Event)
		}
	default:
		return func(a, b LogEntry) int {
			ta, okA := a.Timestamp()
			tb, okB := b.Timestamp()
			switch {
			case !okA && !okB:
				return 0
			case !okA:
				return -1
			case !okB:
				return 1
			}
			return ta.Compare(tb)
		}
	}
}

// Sorted returns a stably sorted copy of entries. The input is left untouched.
func Sorted(entries []LogEntry, field SortField, dir Direction) []LogEntry {
	cmp := Compare(field)
	if dir == Descending {
		asc := cmp
		cmp = func(a, b LogEntry) int { return -asc(a, b) }
	}

	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, cmp)
	return sorted
}

// Page returns the window [page*size, (page+1)*size) of entries, clamped to
// its bounds.
func Page(entries []LogEntry, page, size int) []LogEntry {
	if page < 0 || size <= 0 {
		return nil
	}
	start := page * size
	if start >= len(entries) {
		return nil
	}
	end := min(start+size, len(entries))
	return entries[start:end]
}

func HasNext(page, size, total int) bool {
	return (page+1)*size < total
}

func PageCount(total, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}
