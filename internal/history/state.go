package history

const DefaultPageSize = 10

// ViewState is everything the list page needs, besides the data, to decide
// which rows to show. It only changes through Reduce.
type ViewState struct {
	SortField SortField
	Direction Direction
	Page      int
	PageSize  int
}

func DefaultViewState() ViewState {
	return ViewState{
		SortField: SortByTime,
		Direction: Descending,
		PageSize:  DefaultPageSize,
	}
}

func NewViewState(field SortField, dir Direction, pageSize int) ViewState {
	s := DefaultViewState()
	if field.Valid() {
		s.SortField = field
	}
	if dir.Valid() {
		s.Direction = dir
	}
	if pageSize > 0 {
		s.PageSize = pageSize
	}
	return s
}

// Window sorts a copy of entries and returns the rows of the current page.
func (s ViewState) Window(entries []LogEntry) []LogEntry {
	return Page(Sorted(entries, s.SortField, s.Direction), s.Page, s.PageSize)
}

func (s ViewState) CanAdvance(total int) bool {
	return HasNext(s.Page, s.PageSize, total)
}

type Action interface {
	apply(ViewState) ViewState
}

// ToggleSort flips the direction when Field is already active, otherwise
// switches to Field in ascending order. The page index is kept and unknown
// fields are ignored.
type ToggleSort struct {
	Field SortField
}

func (a ToggleSort) apply(s ViewState) ViewState {
	if !a.Field.Valid() {
		return s
	}
	if a.Field == s.SortField {
		s.Direction = s.Direction.Flip()
	} else {
		s.SortField = a.Field
		s.Direction = Ascending
	}
	return s
}

// NextPage advances one page when at least one entry lies beyond the current
// window. There is no previous-page counterpart.
type NextPage struct {
	Total int
}

func (a NextPage) apply(s ViewState) ViewState {
	if s.CanAdvance(a.Total) {
		s.Page++
	}
	return s
}

func Reduce(s ViewState, a Action) ViewState {
	return a.apply(s)
}
