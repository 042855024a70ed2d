// ABOUTME: Guide adapter for the VLH Steuer-ABC (vlh.de)
// ABOUTME: Maps query keywords to curated article pages and collects related tile headlines

package sources

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"taxresearch-api/core/domain"
	"taxresearch-api/core/interfaces"
)

// vlhPages maps query keywords to Steuer-ABC article pages.
var vlhPages = []struct {
	keyword string
	url     string
}{
	{"kinderfreibetrag", "https://www.vlh.de/wissen-service/steuer-abc/kinderfreibetrag.html"},
	{"werbungskosten", "https://www.vlh.de/arbeiten-pendeln/beruf/werbungskosten.html"},
	{"steuererklärung", "https://www.vlh.de/wissen-service/steuer-abc/steuererklaerung-abgeben.html"},
	{"homeoffice", "https://www.vlh.de/arbeiten-pendeln/beruf/homeoffice-pauschale.html"},
	{"home office", "https://www.vlh.de/arbeiten-pendeln/beruf/homeoffice-pauschale.html"},
	{"pendlerpauschale", "https://www.vlh.de/arbeiten-pendeln/pendeln/pendlerpauschale.html"},
	{"sonderausgaben", "https://www.vlh.de/wissen-service/steuer-abc/sonderausgaben.html"},
	{"außergewöhnliche belastungen", "https://www.vlh.de/krankheit-pflege/krankheit/aussergewoehnliche-belastungen.html"},
	{"steuer", "https://www.vlh.de/wissen-service/steuer-abc.html"},
}

// vlhOverviewURL is the Steuer-ABC index, used when no keyword matches.
const vlhOverviewURL = "https://www.vlh.de/wissen-service/steuer-abc.html"

// VLHAdapter serves plain-language tax articles from the VLH
// (Vereinigte Lohnsteuerhilfe) Steuer-ABC.
type VLHAdapter struct {
	client interfaces.HTTPClient
}

// NewVLHAdapter creates the vlh.de adapter.
func NewVLHAdapter(client interfaces.HTTPClient) *VLHAdapter {
	return &VLHAdapter{client: client}
}

// Name returns the adapter's source identifier.
func (a *VLHAdapter) Name() string {
	return "vlh"
}

// Fetch resolves the query to one article page and builds a lead result
// from its headline and intro paragraph, followed by the related-article
// tiles linked on the page.
func (a *VLHAdapter) Fetch(ctx context.Context, query string, maxResults int) ([]domain.SearchResult, error) {
	if maxResults < 1 {
		return nil, nil
	}
	if maxResults > 5 {
		maxResults = 5
	}

	queryLower := strings.ToLower(query)
	pageURL := vlhOverviewURL
	for _, entry := range vlhPages {
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
		title = "VLH Steuer-Ratgeber"
	}

	snippet := strings.TrimSpace(doc.Find("p[class*='intro'], p[class*='lead'], p[class*='text']").First().Text())
	if snippet == "" {
		snippet = "Verständliche Steuertipps von der VLH"
	}

	results := []domain.SearchResult{{
		Title:          "VLH: " + truncate(title, 80),
		URL:            pageURL,
		Snippet:        truncate(snippet, 200),
		Source:         a.Name(),
		RelevanceScore: 0.85,
	}}

	doc.Find("h3[class*='tile__headline']").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if len(results) >= maxResults {
			return false
		}

		tileTitle := strings.TrimSpace(s.Text())
		href, ok := s.Closest("a").Attr("href")
		if tileTitle == "" || !ok || href == "" {
			return true
		}
		if strings.HasPrefix(href, "/") {
			href = "https://www.vlh.de" + href
		}

		results = append(results, domain.SearchResult{
			Title:          tileTitle,
			URL:            href,
			Source:         a.Name(),
			RelevanceScore: 0.8,
		})
		return true
	})

	return results, nil
}
