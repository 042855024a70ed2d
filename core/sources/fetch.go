// ABOUTME: Shared HTTP-to-document helper for goquery-based adapters
// ABOUTME: Keeps status handling and body lifecycle in one place

package sources

import (
	"context"
	"fmt"
	"net/http"

	"github.com/PuerkitoBio/goquery"

	"taxresearch-api/core/interfaces"
)

// fetchDocument GETs the URL and parses the body into a goquery document.
func fetchDocument(ctx context.Context, client interfaces.HTTPClient, url string) (*goquery.Document, error) {
	resp, err := client.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode(), url)
	}

	return goquery.NewDocumentFromReader(resp.Body())
}

// truncate shortens s to at most max runes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
