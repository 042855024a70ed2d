// ABOUTME: Mock HTTP client and response for content fetcher tests
// ABOUTME: Canned HTML pages stand in for live source fetches

package content

import (
	"context"
	"io"
	"strings"

	"taxresearch-api/core/interfaces"
)

type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int { return m.statusCode }

func (m *mockResponse) Body() io.ReadCloser { return io.NopCloser(strings.NewReader(m.body)) }

func (m *mockResponse) Header(key string) string { return "" }

type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	return m.getFunc(ctx, url)
}

type debugEntry struct {
	msg    string
	fields map[string]interface{}
}

type recordingLogger struct {
	debugs []debugEntry
}

func (l *recordingLogger) Info(msg string, fields map[string]interface{})  {}
func (l *recordingLogger) Warn(msg string, fields map[string]interface{})  {}
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {
	l.debugs = append(l.debugs, debugEntry{msg: msg, fields: fields})
}

// htmlClient serves the given HTML body for every URL with status 200.
func htmlClient(html string) *mockHTTPClient {
	return &mockHTTPClient{
		getFunc: func(_ context.Context, _ string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: html}, nil
		},
	}
}
