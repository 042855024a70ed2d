// ABOUTME: Mock HTTP client and response shared by the adapter tests
// ABOUTME: Serves canned pages keyed by URL, anything else errors

package sources

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"taxresearch-api/core/interfaces"
)

type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int { return m.statusCode }

func (m *mockResponse) Body() io.ReadCloser { return io.NopCloser(strings.NewReader(m.body)) }

func (m *mockResponse) Header(key string) string { return "" }

// mockHTTPClient serves canned pages by exact URL and records every
// requested URL. URLs without a canned page get a transport error.
type mockHTTPClient struct {
	mu    sync.Mutex
	pages map[string]*mockResponse
	calls []string
}

func newMockClient(pages map[string]*mockResponse) *mockHTTPClient {
	return &mockHTTPClient{pages: pages}
}

func (m *mockHTTPClient) Get(_ context.Context, url string) (interfaces.Response, error) {
	m.mu.Lock()
	m.calls = append(m.calls, url)
	m.mu.Unlock()

	if resp, ok := m.pages[url]; ok {
		return resp, nil
	}
	return nil, errors.New("no route to host")
}

func (m *mockHTTPClient) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
