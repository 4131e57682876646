// Package github implements the repository search port using the go-github library.
package github

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	gh "github.com/google/go-github/v82/github"
	"github.com/gregjones/httpcache"

	"github.com/yourusername/freshstars/internal/domain"
	"github.com/yourusername/freshstars/internal/usecase"
)

// Compile-time interface satisfaction check.
var _ usecase.RepositorySearcher = (*Client)(nil)

// Client searches repositories against a configured search endpoint.
type Client struct {
	gh       *gh.Client
	endpoint *url.URL
	logger   *slog.Logger
}

// NewClient creates a search client with the following transport stack:
//  1. httpcache (in-memory ETag conditional request caching, process lifetime only)
//  2. go-github (request construction, JSON decoding, status checks)
//
// baseURL is the full search endpoint, e.g. https://api.github.com/search/repositories.
func NewClient(baseURL string, logger *slog.Logger) (*Client, error) {
	cacheTransport := httpcache.NewMemoryCacheTransport()
	return NewClientWithHTTPClient(cacheTransport.Client(), baseURL, logger)
}

// NewClientWithHTTPClient creates a Client with a custom http.Client.
// Tests use it to point the client at an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string, logger *slog.Logger) (*Client, error) {
	endpoint, err := parseEndpoint(baseURL)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		gh:       gh.NewClient(httpClient),
		endpoint: endpoint,
		logger:   logger,
	}, nil
}

// SearchRepositories fetches one page of results for q.
func (c *Client) SearchRepositories(ctx context.Context, q domain.SearchQuery) (*domain.SearchPage, error) {
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("invalid search query: %w", err)
	}

	reqURL := c.RequestURL(q)
	req, err := c.gh.NewRequest(http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, domain.NewTransportError(fmt.Errorf("building request: %w", err))
	}

	var result gh.RepositoriesSearchResult
	resp, err := c.gh.Do(ctx, req, &result)
	logRateLimit(c.logger, resp, q.Page)
	if err != nil {
		return nil, c.classify(resp, err)
	}

	page := &domain.SearchPage{
		TotalCount:        result.GetTotal(),
		IncompleteResults: result.GetIncompleteResults(),
		Items:             make([]domain.Repository, 0, len(result.Repositories)),
	}
	for _, r := range result.Repositories {
		if r == nil {
			continue
		}
		page.Items = append(page.Items, mapRepository(r))
	}

	c.logger.Debug("search page fetched",
		"page", q.Page,
		"count", len(page.Items),
		"total", page.TotalCount,
		"incomplete", page.IncompleteResults,
	)

	return page, nil
}

// RequestURL returns the full URL requested for q. Query parameters already
// present on the endpoint are kept unless the search overrides them.
func (c *Client) RequestURL(q domain.SearchQuery) string {
	u := *c.endpoint
	values := u.Query()
	values.Set("q", q.Expression())
	values.Set("sort", q.Sort)
	values.Set("order", q.Order)
	values.Set("page", strconv.Itoa(q.Page))
	values.Set("per_page", strconv.Itoa(q.PerPage))
	u.RawQuery = values.Encode()
	return u.String()
}

// classify converts a go-github failure into the domain error taxonomy.
func (c *Client) classify(resp *gh.Response, err error) error {
	var errResp *gh.ErrorResponse
	var rateErr *gh.RateLimitError
	var abuseErr *gh.AbuseRateLimitError

	switch {
	case errors.As(err, &rateErr):
		return domain.NewStatusError(statusOf(rateErr.Response), err)
	case errors.As(err, &abuseErr):
		return domain.NewStatusError(statusOf(abuseErr.Response), err)
	case errors.As(err, &errResp):
		return domain.NewStatusError(statusOf(errResp.Response), err)
	}

	// A response with a success status means the body was the problem.
	if resp != nil && resp.Response != nil && resp.StatusCode/100 == 2 {
		return domain.NewDecodeError(err)
	}

	return domain.NewTransportError(err)
}

func statusOf(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

// parseEndpoint validates the configured base URL.
func parseEndpoint(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, errors.New("search endpoint URL is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing search endpoint URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("search endpoint URL must be http or https, got %q", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("search endpoint URL has no host: %q", raw)
	}
	return u, nil
}

// mapRepository converts a go-github repository into the domain type.
func mapRepository(r *gh.Repository) domain.Repository {
	owner := r.GetOwner()
	return domain.Repository{
		ID:          r.GetID(),
		Name:        r.GetName(),
		FullName:    r.GetFullName(),
		Description: r.GetDescription(),
		Stars:       r.GetStargazersCount(),
		Forks:       r.GetForksCount(),
		HTMLURL:     r.GetHTMLURL(),
		Owner: domain.Owner{
			Login:     owner.GetLogin(),
			AvatarURL: owner.GetAvatarURL(),
			HTMLURL:   owner.GetHTMLURL(),
		},
		Language:  r.GetLanguage(),
		CreatedAt: r.GetCreatedAt().Time,
	}
}

// logRateLimit logs the API rate limit status after each call.
func logRateLimit(logger *slog.Logger, resp *gh.Response, page int) {
	if resp == nil || resp.Response == nil {
		return
	}

	logger.Debug("search api call",
		"page", page,
		"status", resp.StatusCode,
		"rate_remaining", resp.Rate.Remaining,
		"rate_limit", resp.Rate.Limit,
	)

	if resp.Rate.Limit > 0 && resp.Rate.Remaining == 0 {
		logger.Warn("search rate limit exhausted",
			"reset_in", time.Until(resp.Rate.Reset.Time).Round(time.Second),
		)
	}
}
