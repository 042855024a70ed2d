// ABOUTME: News/expert adapter scraping article teasers from haufe.de
// ABOUTME: Uses a colly collector and pre-filters teasers by lexical relevance

package sources

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly"

	"taxresearch-api/core/domain"
	"taxresearch-api/core/interfaces"
	"taxresearch-api/core/relevance"
)

const haufeUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// HaufeAdapter scrapes tax news teasers from haufe.de. Teasers that
// share no vocabulary with the query are dropped before the merge step
// to avoid flooding it with noise.
type HaufeAdapter struct {
	timeout time.Duration
	logger  interfaces.Logger
}

// NewHaufeAdapter creates the haufe.de adapter with the given request
// timeout.
func NewHaufeAdapter(timeout time.Duration, logger interfaces.Logger) *HaufeAdapter {
	return &HaufeAdapter{timeout: timeout, logger: logger}
}

// Name returns the adapter's source identifier.
func (a *HaufeAdapter) Name() string {
	return "haufe"
}

// Fetch scrapes teaser blocks from the tax section and the site search.
func (a *HaufeAdapter) Fetch(ctx context.Context, query string, maxResults int) ([]domain.SearchResult, error) {
	if maxResults < 1 {
		return nil, nil
	}
	if maxResults > 5 {
		maxResults = 5
	}

	pages := []string{
		"https://www.haufe.de/steuern",
		"https://www.haufe.de/suche?query=" + url.QueryEscape(query) + "&filter=steuern",
	}

	for _, page := range pages {
		if ctx.Err() != nil {
			return nil, nil
		}

		results := a.scrapeTeasers(page, query, maxResults)
		if len(results) > 0 {
			return results, nil
		}
	}

	return nil, nil
}

// scrapeTeasers collects teaser blocks from one page.
func (a *HaufeAdapter) scrapeTeasers(page, query string, maxResults int) []domain.SearchResult {
	var results []domain.SearchResult

	c := colly.NewCollector(colly.UserAgent(haufeUserAgent))
	c.SetRequestTimeout(a.timeout)

	c.OnHTML("div[class*='teaser-v2'], div[class*='article-highlight']", func(e *colly.HTMLElement) {
		if len(results) >= maxResults {
			return
		}

		title := teaserText(e.DOM, "[class*='teaser-v2__title'], [class*='article-highlight__header']")
		snippet := truncate(teaserText(e.DOM, "[class*='teaser-v2__text']"), 200)
		href, _ := e.DOM.Find("a[href]").First().Attr("href")

		if title == "" || len(title) <= 5 || href == "" {
			return
		}

		// Keep a few leading teasers even without a match so a broad
		// query still gets current news.
		if !relevance.IsRelevant(title+" "+snippet, query) && len(results) >= 3 {
			return
		}

		results = append(results, domain.SearchResult{
			Title:          title,
			URL:            e.Request.AbsoluteURL(href),
			Snippet:        snippet,
			Source:         a.Name(),
			RelevanceScore: 0.85,
		})
	})

	if err := c.Visit(page); err != nil {
		if a.logger != nil {
			a.logger.Debug("haufe page not scrapeable", map[string]interface{}{
				"url":   page,
				"error": err.Error(),
			})
		}
		return nil
	}

	return results
}

// teaserText extracts trimmed text for the first node matching any of
// the comma-separated selectors.
func teaserText(sel *goquery.Selection, selector string) string {
	return strings.TrimSpace(sel.Find(selector).First().Text())
}
