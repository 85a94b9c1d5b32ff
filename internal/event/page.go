package event

// DefaultPageSize is the page size used when the caller does not pick one.
const DefaultPageSize = 50

// EventPage is a contiguous slice of the full (post-filter) event sequence
// plus pagination metadata. TotalEvents counts the whole sequence, not the
// slice. An empty Events slice with a valid Page is not an error; it means
// the requested page lies beyond the last one.
type EventPage struct {
	Events      []*Event `json:"events"`
	Page        int      `json:"page"`
	PageSize    int      `json:"page_size"`
	TotalEvents int      `json:"total_events"`
	HasMore     bool     `json:"has_more"`
}

// TotalPages returns the number of pages the sequence spans, never less
// than 1 even when the sequence is empty.
func (p *EventPage) TotalPages() int {
	if p.PageSize < 1 {
		return 1
	}
	pages := (p.TotalEvents + p.PageSize - 1) / p.PageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Paginate slices events into the requested page. The page number is
// clamped to a minimum of 1; out-of-range pages yield an empty slice. The
// page size has no upper bound here.
func Paginate(events []*Event, page, pageSize int) *EventPage {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(events)
	start := (page - 1) * pageSize
	end := start + pageSize

	sliceStart := start
	if sliceStart > total {
		sliceStart = total
	}
	sliceEnd := end
	if sliceEnd > total {
		sliceEnd = total
	}

	return &EventPage{
		Events:      events[sliceStart:sliceEnd],
		Page:        page,
		PageSize:    pageSize,
		TotalEvents: total,
		HasMore:     end < total,
	}
}
