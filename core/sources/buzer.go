// ABOUTME: Legal-index adapter for buzer.de statute texts with amendment history
// ABOUTME: Maps query keywords to buzer.de statute IDs and reads the page title

package sources

import (
	"context"
	"strings"

	"taxresearch-api/core/domain"
	"taxresearch-api/core/interfaces"
)

// buzerStatutes maps query keywords to statute IDs on buzer.de.
var buzerStatutes = []struct {
	keyword string
	id      string
	name    string
}{
	{"einkommensteuer", "4499", "EStG"},
	{"lohnsteuer", "4499", "EStG"},
	{"einkommen", "4499", "EStG"},
	{"umsatzsteuer", "4605", "UStG"},
	{"mehrwertsteuer", "4605", "UStG"},
	{"gewerbesteuer", "4622", "GewStG"},
	{"körperschaftsteuer", "4498", "KStG"},
	{"abgabenordnung", "4614", "AO"},
	{"steuer", "4499", "EStG"},
}

// BuzerAdapter serves statute texts from buzer.de, which additionally
// carries the full amendment history of each act.
type BuzerAdapter struct {
	client interfaces.HTTPClient
}

// NewBuzerAdapter creates the buzer.de adapter.
func NewBuzerAdapter(client interfaces.HTTPClient) *BuzerAdapter {
	return &BuzerAdapter{client: client}
}

// Name returns the adapter's source identifier.
func (a *BuzerAdapter) Name() string {
	return "buzer"
}

// Fetch resolves the query to one statute page and picks up its title.
func (a *BuzerAdapter) Fetch(ctx context.Context, query string, maxResults int) ([]domain.SearchResult, error) {
	if maxResults < 1 {
		return nil, nil
	}

	queryLower := strings.ToLower(query)
	id, name := "4499", "EStG"
	for _, entry := range buzerStatutes {
		if strings.Contains(queryLower, entry.keyword) {
			id, name = entry.id, entry.name
			break
		}
	}

	statuteURL := "https://www.buzer.de/gesetz/" + id + "/index.htm"

	doc, err := fetchDocument(ctx, a.client, statuteURL)
	if err != nil {
		return nil, nil
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = name
	}

	return []domain.SearchResult{{
		Title:          "buzer.de - " + title + " (mit Änderungshistorie)",
		URL:            statuteURL,
		Snippet:        "Kompletter Gesetzestext mit allen Änderungen und Historie für " + name,
		Source:         a.Name(),
		RelevanceScore: 0.9,
	}}, nil
}
