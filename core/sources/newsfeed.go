// ABOUTME: News feed adapter reading a tax-news RSS/Atom feed
// ABOUTME: Parses the feed with gofeed and pre-filters items by lexical relevance

package sources

import (
	"context"
	"net/http"

	"github.com/mmcdole/gofeed"

	"taxresearch-api/core/domain"
	"taxresearch-api/core/interfaces"
	"taxresearch-api/core/relevance"
)

// NewsFeedAdapter turns entries of a configured tax-news feed into
// candidate results. Unlike the scraping adapters it carries publication
// dates, since feeds provide them reliably.
type NewsFeedAdapter struct {
	client  interfaces.HTTPClient
	feedURL string
}

// NewNewsFeedAdapter creates the feed adapter. An empty feedURL disables
// it; Fetch then always returns no results.
func NewNewsFeedAdapter(client interfaces.HTTPClient, feedURL string) *NewsFeedAdapter {
	return &NewsFeedAdapter{client: client, feedURL: feedURL}
}

// Name returns the adapter's source identifier.
func (a *NewsFeedAdapter) Name() string {
	return "steuernews-feed"
}

// Fetch parses the configured feed and keeps items matching the query.
func (a *NewsFeedAdapter) Fetch(ctx context.Context, query string, maxResults int) ([]domain.SearchResult, error) {
	if a.feedURL == "" || maxResults < 1 {
		return nil, nil
	}

	resp, err := a.client.Get(ctx, a.feedURL)
	if err != nil {
		return nil, nil
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return nil, nil
	}

	feed, err := gofeed.NewParser().Parse(resp.Body())
	if err != nil {
		return nil, nil
	}

	var results []domain.SearchResult
	for _, item := range feed.Items {
		if len(results) >= maxResults {
			break
		}
		if item.Link == "" || item.Title == "" {
			continue
		}

		snippet := truncate(item.Description, 200)
		if !relevance.IsRelevant(item.Title+" "+snippet, query) {
			continue
		}

		result := domain.SearchResult{
			Title:   item.Title,
			URL:     item.Link,
			Snippet: snippet,
			Source:  a.Name(),
		}
		if item.PublishedParsed != nil {
			published := *item.PublishedParsed
			result.PublishedDate = &published
		}

		results = append(results, result)
	}

	return results, nil
}
