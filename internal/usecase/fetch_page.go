package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/yourusername/freshstars/internal/domain"
)

// RepositorySearcher is the port to the code-hosting search API.
type RepositorySearcher interface {
	SearchRepositories(ctx context.Context, q domain.SearchQuery) (*domain.SearchPage, error)
}

// FetchPageUseCase loads one page of recently created repositories.
type FetchPageUseCase struct {
	searcher RepositorySearcher
	clock    func() time.Time
	logger   *slog.Logger
}

// NewFetchPageUseCase creates a new FetchPageUseCase. A nil clock uses
// time.Now and a nil logger uses slog.Default.
func NewFetchPageUseCase(searcher RepositorySearcher, clock func() time.Time, logger *slog.Logger) *FetchPageUseCase {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FetchPageUseCase{
		searcher: searcher,
		clock:    clock,
		logger:   logger,
	}
}

// FetchPageRequest contains the parameters for fetching a page.
type FetchPageRequest struct {
	Page int
}

// FetchPageResponse contains one page of results.
type FetchPageResponse struct {
	Page       int
	Items      []domain.Repository
	TotalCount int
	Incomplete bool // the search timed out server-side and may have skipped matches
}

// Execute fetches the requested page. The date filter is computed from the
// clock at call time. Failures are returned as *domain.FetchError.
func (uc *FetchPageUseCase) Execute(ctx context.Context, req FetchPageRequest) (*FetchPageResponse, error) {
	query := domain.NewTrendingQuery(uc.clock(), req.Page)
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid page request: %w", err)
	}

	uc.logger.Debug("fetching page",
		"page", query.Page,
		"created_after", query.DateFilter(),
	)

	page, err := uc.searcher.SearchRepositories(ctx, query)
	if err != nil {
		fetchErr := domain.AsFetchError(err)
		uc.logger.Warn("page fetch failed",
			"page", query.Page,
			"kind", fetchErr.Kind.String(),
			"error", err,
		)
		return nil, fetchErr
	}
	if page == nil {
		page = &domain.SearchPage{}
	}

	uc.logger.Info("page fetched",
		"page", query.Page,
		"count", len(page.Items),
		"total", page.TotalCount,
	)

	return &FetchPageResponse{
		Page:       query.Page,
		Items:      page.Items,
		TotalCount: page.TotalCount,
		Incomplete: page.IncompleteResults,
	}, nil
}
