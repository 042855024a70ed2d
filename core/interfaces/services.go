// ABOUTME: Service interfaces for the research aggregation core
// ABOUTME: Defines the source adapter capability and the content fetcher contract

package interfaces

import (
	"context"

	"taxresearch-api/core/domain"
)

// SourceAdapter turns a query into zero or more candidate results from one
// specific origin. Implementations are stateless: two concurrent calls with
// the same query must be safe and independent. Recoverable failures (HTTP
// errors, empty pages, parse misses) yield an empty slice, not an error;
// only unexpected faults are returned, and the aggregator contains those.
type SourceAdapter interface {
	// Name returns the adapter's source identifier, used in
	// SearchResult.Source and AggregatedResponse.SourcesUsed.
	Name() string

	// Fetch returns candidate results for the query, at most maxResults.
	Fetch(ctx context.Context, query string, maxResults int) ([]domain.SearchResult, error)
}

// ContentFetcher retrieves the primary readable text of a page.
type ContentFetcher interface {
	// FetchFullText returns the extracted main content of the URL, or an
	// empty string when the page cannot be fetched or parsed. It never
	// returns an error; failures mean "content absent".
	FetchFullText(ctx context.Context, url string) string
}
