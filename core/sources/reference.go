// ABOUTME: Reference adapter resolving queries to official statute texts on gesetze-im-internet.de
// ABOUTME: Uses a static keyword-to-statute mapping instead of free-text search

package sources

import (
	"context"
	"strings"

	"taxresearch-api/core/domain"
	"taxresearch-api/core/interfaces"
)

// statuteSlugs maps query keywords to statute slugs on
// gesetze-im-internet.de. Order matters: more specific terms first.
var statuteSlugs = []struct {
	keyword string
	slug    string
}{
	{"einkommensteuer", "estg"},
	{"lohnsteuer", "estg"},
	{"einkommen", "estg"},
	{"umsatzsteuer", "ustg"},
	{"mehrwertsteuer", "ustg"},
	{"mwst", "ustg"},
	{"gewerbesteuer", "gewstg"},
	{"körperschaftsteuer", "kstg"},
	{"abgabenordnung", "ao"},
	{"steuer", "estg"},
}

// ReferenceAdapter returns the canonical statute text matching the query
// from gesetze-im-internet.de. It is the highest-trust source and yields
// at most one result.
type ReferenceAdapter struct {
	client interfaces.HTTPClient
}

// NewReferenceAdapter creates the gesetze-im-internet adapter.
func NewReferenceAdapter(client interfaces.HTTPClient) *ReferenceAdapter {
	return &ReferenceAdapter{client: client}
}

// Name returns the adapter's source identifier.
func (a *ReferenceAdapter) Name() string {
	return "gesetze-im-internet"
}

// statuteForQuery resolves the query to a statute slug, defaulting to
// the income tax act when nothing matches.
func statuteForQuery(query string) string {
	queryLower := strings.ToLower(query)
	for _, m := range statuteSlugs {
		if strings.Contains(queryLower, m.keyword) {
			return m.slug
		}
	}
	return "estg"
}

// bmfTopicURL is the ministry's tax topic page, appended as a second
// reference result when reachable.
const bmfTopicURL = "https://www.bundesfinanzministerium.de/Web/DE/Themen/Steuern/steuern.html"

// Fetch resolves the query to one statute index page, plus the BMF tax
// topic page when it answers.
func (a *ReferenceAdapter) Fetch(ctx context.Context, query string, maxResults int) ([]domain.SearchResult, error) {
	if maxResults < 1 {
		return nil, nil
	}

	var results []domain.SearchResult

	slug := statuteForQuery(query)
	statuteURL := "https://www.gesetze-im-internet.de/" + slug + "/index.html"

	// An unreachable statute page means no result, not a failure.
	if doc, err := fetchDocument(ctx, a.client, statuteURL); err == nil {
		title := strings.TrimSpace(doc.Find("h1").First().Text())
		if title == "" {
			title = strings.TrimSpace(doc.Find("title").First().Text())
		}
		if title == "" {
			title = strings.ToUpper(slug)
		}

		results = append(results, domain.SearchResult{
			Title:          "Gesetzestext: " + truncate(title, 100),
			URL:            statuteURL,
			Snippet:        "Offizieller Gesetzestext auf gesetze-im-internet.de - Aktuelle Fassung",
			Source:         a.Name(),
			RelevanceScore: 0.95,
		})
	}

	if len(results) < maxResults {
		if resp, err := a.client.Get(ctx, bmfTopicURL); err == nil {
			if resp.StatusCode() == 200 {
				results = append(results, domain.SearchResult{
					Title:          "Bundesfinanzministerium - Thema Steuern",
					URL:            bmfTopicURL,
					Snippet:        "Offizielle Informationen des Bundesfinanzministeriums zu Steuerthemen",
					Source:         a.Name(),
					RelevanceScore: 0.9,
				})
			}
			resp.Body().Close()
		}
	}

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}
