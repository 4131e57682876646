package domain

import (
	"errors"
	"fmt"
	"time"
)

const (
	// PageSize is the fixed number of results requested per page.
	PageSize = 20
	// LookbackDays is how far back the creation-date filter reaches.
	LookbackDays = 10

	// SortStars orders results by star count.
	SortStars = "stars"
	// OrderDesc orders results from most to least.
	OrderDesc = "desc"
)

// SearchQuery describes one page of the trending repository search.
type SearchQuery struct {
	CreatedAfter time.Time
	Sort         string
	Order        string
	Page         int
	PerPage      int
}

// NewTrendingQuery builds the query for repositories created in the last
// LookbackDays days, relative to now, for the given page.
func NewTrendingQuery(now time.Time, page int) SearchQuery {
	utc := now.UTC().AddDate(0, 0, -LookbackDays)
	day := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)

	return SearchQuery{
		CreatedAfter: day,
		Sort:         SortStars,
		Order:        OrderDesc,
		Page:         page,
		PerPage:      PageSize,
	}
}

// DateFilter returns the creation-date bound as YYYY-MM-DD.
func (q SearchQuery) DateFilter() string {
	return q.CreatedAfter.Format("2006-01-02")
}

// Expression returns the search expression sent as the q parameter.
func (q SearchQuery) Expression() string {
	return "created:>" + q.DateFilter()
}

// Validate checks that the query can be sent.
func (q SearchQuery) Validate() error {
	if q.Page < 1 {
		return fmt.Errorf("page must be positive, got %d", q.Page)
	}
	if q.PerPage < 1 {
		return fmt.Errorf("per_page must be positive, got %d", q.PerPage)
	}
	if q.CreatedAfter.IsZero() {
		return errors.New("creation date filter is required")
	}
	return nil
}

// SearchPage is one decoded page of search results, in API order.
type SearchPage struct {
	TotalCount        int
	IncompleteResults bool
	Items             []Repository
}

// IsFull returns true if the page carried a full PageSize of results,
// meaning more pages may follow.
func (p *SearchPage) IsFull() bool {
	return p != nil && len(p.Items) == PageSize
}
