// ABOUTME: Content fetcher retrieving the primary readable text of a page
// ABOUTME: Per-domain selector overrides with a readability fallback, failures yield absent content

package content

import (
	"bytes"
	"context"
	"io"
	"net/http"
	neturl "net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	coreerrors "taxresearch-api/core/errors"
	"taxresearch-api/core/interfaces"
	"taxresearch-api/pkg/utils/text"
)

// MaxContentLength bounds extracted text to keep memory and downstream
// prompt size in check.
const MaxContentLength = 10000

// domainSelectors maps a domain substring to the selector of its main
// content region. Domains not listed here fall through to the generic
// readability heuristic.
var domainSelectors = []struct {
	domain   string
	selector string
}{
	{"haufe.de", "div.article-body, article"},
	{"finanztip.de", "article, main"},
	{"vlh.de", "main, article"},
	{"bundesfinanzministerium.de", "div.content, main"},
	{"dejure.org", "#inhalt, article"},
}

// strippedElements are removed before any content selection.
const strippedElements = "script, style, nav, footer, header, aside"

// Fetcher extracts readable page text, independent of which adapter
// produced the URL.
type Fetcher struct {
	client interfaces.HTTPClient
	logger interfaces.Logger
}

// NewFetcher creates a content fetcher.
func NewFetcher(client interfaces.HTTPClient, logger interfaces.Logger) *Fetcher {
	return &Fetcher{client: client, logger: logger}
}

// FetchFullText retrieves the page and extracts its main readable text.
// It never fails: any error yields an empty string, meaning "absent".
func (f *Fetcher) FetchFullText(ctx context.Context, pageURL string) string {
	resp, err := f.client.Get(ctx, pageURL)
	if err != nil {
		f.logDebug(pageURL, err)
		return ""
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return ""
	}

	raw, err := io.ReadAll(resp.Body())
	if err != nil {
		f.logDebug(pageURL, err)
		return ""
	}

	extracted := f.extract(raw, pageURL)
	return text.Truncate(text.Collapse(extracted), MaxContentLength)
}

// extract selects the main content region, preferring the per-domain
// override and falling back to readability's largest-readable-block
// heuristic.
func (f *Fetcher) extract(raw []byte, pageURL string) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return ""
	}

	doc.Find(strippedElements).Remove()

	for _, override := range domainSelectors {
		if !strings.Contains(pageURL, override.domain) {
			continue
		}
		if sel := doc.Find(override.selector); sel.Length() > 0 {
			return blockText(sel.First())
		}
		break
	}

	parsed, err := neturl.Parse(pageURL)
	if err == nil {
		if article, err := readability.FromReader(bytes.NewReader(raw), parsed); err == nil && article.TextContent != "" {
			return article.TextContent
		}
	}

	if sel := doc.Find("main, article, body"); sel.Length() > 0 {
		return blockText(sel.First())
	}
	return ""
}

// blockText renders a selection as newline-separated blocks so that
// downstream paragraph splitting stays meaningful.
func blockText(sel *goquery.Selection) string {
	var b strings.Builder
	sel.Find("h1, h2, h3, h4, h5, p, li, td, blockquote").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			b.WriteString(t)
			b.WriteString("\n")
		}
	})
	if b.Len() == 0 {
		return sel.Text()
	}
	return b.String()
}

func (f *Fetcher) logDebug(pageURL string, err error) {
	if f.logger == nil {
		return
	}
	fetchErr := &coreerrors.ContentFetchError{URL: pageURL, Err: err}
	f.logger.Debug("content fetch failed", map[string]interface{}{
		"url":   pageURL,
		"error": fetchErr.Error(),
	})
}
