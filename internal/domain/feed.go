package domain

// FeedState summarizes what the list view should show.
type FeedState int

const (
	// FeedIdle means results are shown and more may be requested.
	FeedIdle FeedState = iota
	// FeedLoading means a page fetch is in flight.
	FeedLoading
	// FeedExhausted means the last page was short and no more fetches happen.
	FeedExhausted
	// FeedErrored means the last fetch failed and only a retry can continue.
	FeedErrored
)

// String returns the string representation of the feed state.
func (s FeedState) String() string {
	switch s {
	case FeedIdle:
		return "idle"
	case FeedLoading:
		return "loading"
	case FeedExhausted:
		return "exhausted"
	case FeedErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// FetchTicket identifies one issued fetch. A result is only applied while
// the ticket's generation matches the feed's.
type FetchTicket struct {
	Page       int
	Generation uint64
}

// Feed is the accumulated list state behind the trending view.
// It is not safe for concurrent use; all mutation happens on the UI loop.
type Feed struct {
	items      []Repository
	seen       map[int64]struct{}
	page       int
	loading    bool
	err        string
	hasMore    bool
	generation uint64
}

// NewFeed creates an empty feed positioned at page 1.
func NewFeed() *Feed {
	return &Feed{
		items:   make([]Repository, 0, PageSize),
		seen:    make(map[int64]struct{}),
		page:    1,
		hasMore: true,
	}
}

// BeginFetch marks a fetch for page as in flight. It returns false and
// changes nothing if another fetch is already in flight.
func (f *Feed) BeginFetch(page int) (FetchTicket, bool) {
	if f.loading {
		return FetchTicket{}, false
	}
	f.loading = true
	f.err = ""
	return FetchTicket{Page: page, Generation: f.generation}, true
}

// Complete merges a fetched page into the feed. Items whose ID is already
// present are dropped; the rest are appended in arrival order. It reports
// how many items were added and whether the result was applied at all.
func (f *Feed) Complete(ticket FetchTicket, items []Repository) (int, bool) {
	if ticket.Generation != f.generation {
		return 0, false
	}

	added := 0
	for _, repo := range items {
		if _, dup := f.seen[repo.ID]; dup {
			continue
		}
		f.seen[repo.ID] = struct{}{}
		f.items = append(f.items, repo)
		added++
	}

	f.hasMore = len(items) == PageSize
	f.err = ""
	f.loading = false
	return added, true
}

// Fail records a failed fetch. Accumulated items are kept.
func (f *Feed) Fail(ticket FetchTicket, message string) bool {
	if ticket.Generation != f.generation {
		return false
	}
	if message == "" {
		message = "An error occurred"
	}
	f.err = message
	f.loading = false
	return true
}

// Advance moves the page cursor forward by one when another page may be
// requested, returning the new cursor.
func (f *Feed) Advance() (int, bool) {
	if f.loading || !f.hasMore || f.err != "" {
		return f.page, false
	}
	f.page++
	return f.page, true
}

// Reset discards all results and returns the feed to page 1. Fetches issued
// before the reset are ignored when they resolve.
func (f *Feed) Reset() {
	f.items = make([]Repository, 0, PageSize)
	f.seen = make(map[int64]struct{})
	f.page = 1
	f.loading = false
	f.err = ""
	f.hasMore = true
	f.generation++
}

// Items returns a copy of the accumulated repositories.
func (f *Feed) Items() []Repository {
	out := make([]Repository, len(f.items))
	copy(out, f.items)
	return out
}

// Len returns the number of accumulated repositories.
func (f *Feed) Len() int {
	return len(f.items)
}

// At returns the repository at index i.
func (f *Feed) At(i int) (Repository, bool) {
	if i < 0 || i >= len(f.items) {
		return Repository{}, false
	}
	return f.items[i], true
}

// Page returns the current page cursor.
func (f *Feed) Page() int {
	return f.page
}

// Loading returns true while a fetch is in flight.
func (f *Feed) Loading() bool {
	return f.loading
}

// Err returns the current error message, or "" if none.
func (f *Feed) Err() string {
	return f.err
}

// HasMore returns true until a short page has been received.
func (f *Feed) HasMore() bool {
	return f.hasMore
}

// Generation returns the reset counter.
func (f *Feed) Generation() uint64 {
	return f.generation
}

// State summarizes the feed for rendering.
func (f *Feed) State() FeedState {
	switch {
	case f.err != "":
		return FeedErrored
	case f.loading:
		return FeedLoading
	case !f.hasMore:
		return FeedExhausted
	default:
		return FeedIdle
	}
}
