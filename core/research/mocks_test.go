// ABOUTME: Shared mock implementations for research service tests
// ABOUTME: Func-field mocks for adapters, cache, fetcher and logger

package research

import (
	"context"
	"errors"
	"sync"
	"time"

	"taxresearch-api/core/domain"
)

type mockAdapter struct {
	name      string
	fetchFunc func(ctx context.Context, query string, maxResults int) ([]domain.SearchResult, error)
}

func (m *mockAdapter) Name() string { return m.name }

func (m *mockAdapter) Fetch(ctx context.Context, query string, maxResults int) ([]domain.SearchResult, error) {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, query, maxResults)
	}
	return nil, nil
}

// staticAdapter returns a fixed result set on every call.
func staticAdapter(name string, results []domain.SearchResult) *mockAdapter {
	return &mockAdapter{
		name: name,
		fetchFunc: func(_ context.Context, _ string, _ int) ([]domain.SearchResult, error) {
			return results, nil
		},
	}
}

// failingAdapter always returns an error.
func failingAdapter(name string) *mockAdapter {
	return &mockAdapter{
		name: name,
		fetchFunc: func(_ context.Context, _ string, _ int) ([]domain.SearchResult, error) {
			return nil, errors.New("upstream unavailable")
		},
	}
}

// blockingAdapter waits for the per-adapter deadline and reports the
// context error, like a source that never responds.
func blockingAdapter(name string) *mockAdapter {
	return &mockAdapter{
		name: name,
		fetchFunc: func(ctx context.Context, _ string, _ int) ([]domain.SearchResult, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
}

type mockCache struct {
	getFunc    func(ctx context.Context, key string) ([]byte, error)
	setFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	deleteFunc func(ctx context.Context, key string) error
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return nil, errors.New("cache miss")
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, key)
	}
	return nil
}

type mockFetcher struct {
	fetchFunc func(ctx context.Context, url string) string
}

func (m *mockFetcher) FetchFullText(ctx context.Context, url string) string {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, url)
	}
	return ""
}

type logEntry struct {
	msg    string
	fields map[string]interface{}
}

type mockLogger struct {
	mu    sync.Mutex
	warns []logEntry
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, logEntry{msg: msg, fields: fields})
}

func (m *mockLogger) warnCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.warns)
}
