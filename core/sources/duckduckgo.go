// ABOUTME: Generic fallback adapter using the DuckDuckGo HTML endpoint
// ABOUTME: Constrains the free-text query to preferred domains, no API key required

package sources

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"taxresearch-api/core/domain"
	"taxresearch-api/core/interfaces"
)

// ddgSiteFilter narrows the free-text search to trusted tax domains.
const ddgSiteFilter = " steuern deutschland site:bundesfinanzministerium.de OR site:dejure.org OR site:haufe.de"

// DuckDuckGoAdapter backfills results through the credential-free
// DuckDuckGo HTML endpoint when the curated adapters return little.
type DuckDuckGoAdapter struct {
	client interfaces.HTTPClient
}

// NewDuckDuckGoAdapter creates the fallback search adapter.
func NewDuckDuckGoAdapter(client interfaces.HTTPClient) *DuckDuckGoAdapter {
	return &DuckDuckGoAdapter{client: client}
}

// Name returns the adapter's source identifier.
func (a *DuckDuckGoAdapter) Name() string {
	return "duckduckgo"
}

// Fetch issues the constrained free-text query and parses the result
// list from the returned page. The fallback only gets a third of the
// requested budget so low-trust backfill cannot crowd out the curated
// sources in the merge.
func (a *DuckDuckGoAdapter) Fetch(ctx context.Context, query string, maxResults int) ([]domain.SearchResult, error) {
	maxResults /= 3
	if maxResults < 1 {
		return nil, nil
	}

	searchURL := "https://html.duckduckgo.com/html/?q=" + url.QueryEscape(query+ddgSiteFilter)

	doc, err := fetchDocument(ctx, a.client, searchURL)
	if err != nil {
		return nil, nil
	}

	var results []domain.SearchResult
	doc.Find("div.result").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		titleLink := s.Find("a.result__a").First()
		href, _ := titleLink.Attr("href")
		title := strings.TrimSpace(titleLink.Text())
		if href == "" || title == "" {
			return true
		}

		snippet := strings.TrimSpace(s.Find("a.result__snippet").First().Text())

		results = append(results, domain.SearchResult{
			Title:   title,
			URL:     href,
			Snippet: snippet,
			Source:  a.Name(),
		})

		return len(results) < maxResults
	})

	return results, nil
}
