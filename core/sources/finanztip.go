// ABOUTME: Guide adapter for finanztip.de consumer tax guides
// ABOUTME: Maps query keywords to curated guide pages and reads title plus meta description

package sources

import (
	"context"
	"strings"

	"taxresearch-api/core/domain"
	"taxresearch-api/core/interfaces"
)

// finanztipPages maps query keywords to known guide pages.
var finanztipPages = []struct {
	keyword string
	url     string
}{
	{"grundfreibetrag", "https://www.finanztip.de/grundfreibetrag/"},
	{"einkommensteuer", "https://www.finanztip.de/einkommensteuertarif/"},
	{"steuererklärung", "https://www.finanztip.de/steuererklaerung/"},
	{"steuererklaerung", "https://www.finanztip.de/steuererklaerung/"},
	{"werbungskosten", "https://www.finanztip.de/werbungskosten/"},
	{"home office", "https://www.finanztip.de/homeoffice-pauschale/"},
	{"homeoffice", "https://www.finanztip.de/homeoffice-pauschale/"},
	{"sonderausgaben", "https://www.finanztip.de/sonderausgaben/"},
	{"absetzen", "https://www.finanztip.de/werbungskosten/"},
	{"kleinunternehmer", "https://www.finanztip.de/kleinunternehmerregelung/"},
	{"steuer", "https://www.finanztip.de/steuern/"},
}

// FinanztipAdapter serves consumer-oriented tax guides from
// finanztip.de.
type FinanztipAdapter struct {
	client interfaces.HTTPClient
}

// NewFinanztipAdapter creates the finanztip.de adapter.
func NewFinanztipAdapter(client interfaces.HTTPClient) *FinanztipAdapter {
	return &FinanztipAdapter{client: client}
}

// Name returns the adapter's source identifier.
func (a *FinanztipAdapter) Name() string {
	return "finanztip"
}

// Fetch resolves the query to one guide page and builds a result from
// its headline and meta description.
func (a *FinanztipAdapter) Fetch(ctx context.Context, query string, maxResults int) ([]domain.SearchResult, error) {
	if maxResults < 1 {
		return nil, nil
	}

	queryLower := strings.ToLower(query)
	pageURL := "https://www.finanztip.de/steuern/"
	for _, entry := range finanztipPages {
		if strings.Contains(queryLower, entry.keyword) {
			pageURL = entry.url
			break
		}
	}

	doc, err := fetchDocument(ctx, a.client, pageURL)
	if err != nil {
		return nil, nil
	}

	title := strings.TrimSpace(doc.Find("h1").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if title == "" {
		title = "Finanztip Steuer-Ratgeber"
	}

	snippet, _ := doc.Find("meta[name='description']").First().Attr("content")
	snippet = strings.TrimSpace(snippet)
	if snippet == "" {
		snippet = "Unabhängiger Steuer-Ratgeber"
	}

	return []domain.SearchResult{{
		Title:          "Finanztip: " + truncate(title, 80),
		URL:            pageURL,
		Snippet:        truncate(snippet, 200),
		Source:         a.Name(),
		RelevanceScore: 0.85,
	}}, nil
}
