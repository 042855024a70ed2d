// ABOUTME: Legal-index adapter for dejure.org statute texts
// ABOUTME: Maps query keywords to a curated catalogue of statutes with deterministic URLs

package sources

import (
	"context"
	"net/http"
	"strings"

	"taxresearch-api/core/domain"
	"taxresearch-api/core/interfaces"
)

// dejureCatalogue maps query keywords to known tax statutes on
// dejure.org. No free-text ranking is needed; the catalogue is curated.
var dejureCatalogue = []struct {
	keyword string
	abbrev  string
	name    string
}{
	{"kleinunternehmer", "UStG", "Umsatzsteuergesetz § 19"},
	{"einkommensteuer", "EStG", "Einkommensteuergesetz"},
	{"lohnsteuer", "EStG", "Einkommensteuergesetz"},
	{"einkommen", "EStG", "Einkommensteuergesetz"},
	{"steuern sparen", "EStG", "Einkommensteuergesetz"},
	{"steuer sparen", "EStG", "Einkommensteuergesetz"},
	{"umsatzsteuer", "UStG", "Umsatzsteuergesetz"},
	{"mehrwertsteuer", "UStG", "Umsatzsteuergesetz"},
	{"mwst", "UStG", "Umsatzsteuergesetz"},
	{"vorsteuer", "UStG", "Umsatzsteuergesetz"},
	{"gewerbesteuer", "GewStG", "Gewerbesteuergesetz"},
	{"körperschaftsteuer", "KStG", "Körperschaftsteuergesetz"},
	{"abgabenordnung", "AO", "Abgabenordnung"},
	{"abschreibung", "EStG", "Einkommensteuergesetz - AfA"},
	{"steuer", "EStG", "Einkommensteuergesetz"},
}

// DejureAdapter serves statute texts from dejure.org.
type DejureAdapter struct {
	client interfaces.HTTPClient
}

// NewDejureAdapter creates the dejure.org adapter.
func NewDejureAdapter(client interfaces.HTTPClient) *DejureAdapter {
	return &DejureAdapter{client: client}
}

// Name returns the adapter's source identifier.
func (a *DejureAdapter) Name() string {
	return "dejure"
}

// Fetch maps the query onto the statute catalogue and confirms the
// statute page is reachable. When no keyword matches, the income tax
// act is returned as the default entry.
func (a *DejureAdapter) Fetch(ctx context.Context, query string, maxResults int) ([]domain.SearchResult, error) {
	if maxResults < 1 {
		return nil, nil
	}

	queryLower := strings.ToLower(query)

	for _, entry := range dejureCatalogue {
		if !strings.Contains(queryLower, entry.keyword) {
			continue
		}

		statuteURL := "https://dejure.org/gesetze/" + entry.abbrev
		if !a.reachable(ctx, statuteURL) {
			return nil, nil
		}

		return []domain.SearchResult{{
			Title:          "dejure.org - " + entry.name,
			URL:            statuteURL,
			Snippet:        "Vollständiger Gesetzestext des " + entry.name + " mit Paragraphen-Übersicht",
			Source:         a.Name(),
			RelevanceScore: 0.9,
		}}, nil
	}

	return []domain.SearchResult{{
		Title:          "dejure.org - Einkommensteuergesetz (EStG)",
		URL:            "https://dejure.org/gesetze/EStG",
		Snippet:        "Vollständiger Gesetzestext des Einkommensteuergesetzes",
		Source:         a.Name(),
		RelevanceScore: 0.85,
	}}, nil
}

// reachable checks that the statute page answers with a 200.
func (a *DejureAdapter) reachable(ctx context.Context, url string) bool {
	resp, err := a.client.Get(ctx, url)
	if err != nil {
		return false
	}
	defer resp.Body().Close()
	return resp.StatusCode() == http.StatusOK
}
