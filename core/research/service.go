// ABOUTME: Research service orchestrating the multi-source aggregation pipeline
// ABOUTME: Cache lookup, concurrent adapter fan-out, scoring, dedupe, enrichment and cache write

package research

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"taxresearch-api/core/answer"
	"taxresearch-api/core/domain"
	coreerrors "taxresearch-api/core/errors"
	"taxresearch-api/core/interfaces"
	"taxresearch-api/core/relevance"
)

// Config holds construction-time settings for the research service.
type Config struct {
	// CacheTTL is the validity window of a cached aggregated response
	CacheTTL time.Duration

	// AdapterTimeout bounds each source adapter call independently
	AdapterTimeout time.Duration

	// MaxEnriched is the number of top results that get full text
	MaxEnriched int
}

// DefaultConfig returns the default service settings.
func DefaultConfig() Config {
	return Config{
		CacheTTL:       24 * time.Hour,
		AdapterTimeout: 15 * time.Second,
		MaxEnriched:    3,
	}
}

// SearchOptions controls one Search call.
type SearchOptions struct {
	// NumResults caps the returned result list
	NumResults int

	// UseCache enables the cache lookup and write
	UseCache bool

	// IncludeContent enables full-text enrichment of top results
	IncludeContent bool
}

// DefaultSearchOptions returns the standard options.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{NumResults: 10, UseCache: true, IncludeContent: false}
}

// Service aggregates research results across all registered source
// adapters. It exclusively owns the assembly of an AggregatedResponse
// for the duration of one Search call; adapters are stateless
// collaborators and the cache is the only shared mutable state.
type Service struct {
	deps     interfaces.Dependencies
	adapters []interfaces.SourceAdapter
	scorer   *relevance.Scorer
	trust    *domain.TrustTable
	fetcher  interfaces.ContentFetcher
	synth    *answer.Synthesizer
	cfg      Config
}

// NewService creates a research service over a fixed adapter list.
// Adapters are fanned out to in registration order, which also fixes
// tie-breaking in the final ranking.
func NewService(
	deps interfaces.Dependencies,
	adapters []interfaces.SourceAdapter,
	scorer *relevance.Scorer,
	trust *domain.TrustTable,
	fetcher interfaces.ContentFetcher,
	cfg Config,
) *Service {
	defaults := DefaultConfig()
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaults.CacheTTL
	}
	if cfg.AdapterTimeout <= 0 {
		cfg.AdapterTimeout = defaults.AdapterTimeout
	}
	if cfg.MaxEnriched <= 0 {
		cfg.MaxEnriched = defaults.MaxEnriched
	}

	return &Service{
		deps:     deps,
		adapters: adapters,
		scorer:   scorer,
		trust:    trust,
		fetcher:  fetcher,
		synth:    answer.NewSynthesizer(),
		cfg:      cfg,
	}
}

// validate checks the caller's contract. These are the only failures
// Search propagates.
func validate(query string, opts SearchOptions) error {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return &coreerrors.ValidationError{Field: "query", Message: "query cannot be empty"}
	}
	if len([]rune(trimmed)) < 2 {
		return &coreerrors.ValidationError{Field: "query", Message: "query must be at least 2 characters"}
	}
	if opts.NumResults < 1 {
		return &coreerrors.ValidationError{Field: "numResults", Message: "numResults must be positive"}
	}
	return nil
}

// cacheKey is the hex-truncated digest of the normalized query.
func cacheKey(query string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(query))))
	return "research:" + hex.EncodeToString(sum[:])[:16]
}

// Search runs the full aggregation pipeline. Adapter, cache and fetch
// failures are contained; if every source fails the call still succeeds
// with an empty result list.
func (s *Service) Search(ctx context.Context, query string, opts SearchOptions) (*domain.AggregatedResponse, error) {
	if err := validate(query, opts); err != nil {
		return nil, err
	}

	start := time.Now()

	if opts.UseCache {
		if cached := s.readCache(ctx, query); cached != nil {
			return cached, nil
		}
	}

	merged, sourcesUsed := s.fanOut(ctx, query, opts.NumResults)

	for i := range merged {
		raw := s.scorer.Score(merged[i].Title+" "+merged[i].Snippet, query)
		merged[i].RelevanceScore = raw * s.trust.Weight(merged[i].URL)
	}

	// Stable sort keeps fan-out order for equal scores: adapter
	// registration order first, within-adapter order second.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].RelevanceScore > merged[j].RelevanceScore
	})

	unique := dedupeByURL(merged)

	if opts.IncludeContent {
		s.enrich(ctx, unique)
	}

	final := unique
	if len(final) > opts.NumResults {
		final = final[:opts.NumResults]
	}

	response := &domain.AggregatedResponse{
		Query:        query,
		Results:      final,
		TotalFound:   len(merged),
		SearchTimeMs: time.Since(start).Milliseconds(),
		SourcesUsed:  sourcesUsed,
		Timestamp:    time.Now(),
	}

	if opts.UseCache && len(final) > 0 {
		s.writeCache(ctx, query, response)
	}

	return response, nil
}

// fanOut queries every adapter concurrently. Each call is independently
// time-boxed and failure-isolated: a slow or failing adapter contributes
// nothing and delays the join by at most its own timeout.
func (s *Service) fanOut(ctx context.Context, query string, maxResults int) ([]domain.SearchResult, []string) {
	perAdapter := make([][]domain.SearchResult, len(s.adapters))

	var wg sync.WaitGroup
	for i, adapter := range s.adapters {
		wg.Add(1)
		go func(idx int, a interfaces.SourceAdapter) {
			defer wg.Done()

			adapterCtx, cancel := context.WithTimeout(ctx, s.cfg.AdapterTimeout)
			defer cancel()

			results, err := a.Fetch(adapterCtx, query, maxResults)
			if err != nil {
				adapterErr := &coreerrors.AdapterError{Source: a.Name(), Err: err}
				if s.deps.Logger != nil {
					s.deps.Logger.Warn("source failed", map[string]interface{}{
						"source": a.Name(),
						"error":  adapterErr.Error(),
					})
				}
				return
			}
			perAdapter[idx] = results
		}(i, adapter)
	}
	wg.Wait()

	var merged []domain.SearchResult
	var sourcesUsed []string
	for i, results := range perAdapter {
		if len(results) == 0 {
			continue
		}
		sourcesUsed = append(sourcesUsed, s.adapters[i].Name())
		merged = append(merged, results...)
	}
	if sourcesUsed == nil {
		sourcesUsed = []string{}
	}
	return merged, sourcesUsed
}

// dedupeByURL keeps the first occurrence of each URL. Since the input
// is already ranked, the first occurrence is the highest-ranked one.
func dedupeByURL(results []domain.SearchResult) []domain.SearchResult {
	seen := make(map[string]struct{}, len(results))
	unique := make([]domain.SearchResult, 0, len(results))
	for _, r := range results {
		if _, ok := seen[r.URL]; ok {
			continue
		}
		seen[r.URL] = struct{}{}
		unique = append(unique, r)
	}
	return unique
}

// enrich fetches full text for the top results, sequentially to bound
// resource use. Fetch failures leave the content absent.
func (s *Service) enrich(ctx context.Context, results []domain.SearchResult) {
	if s.fetcher == nil {
		return
	}
	limit := s.cfg.MaxEnriched
	if limit > len(results) {
		limit = len(results)
	}
	for i := 0; i < limit; i++ {
		if content := s.fetcher.FetchFullText(ctx, results[i].URL); content != "" {
			results[i].Content = content
		}
	}
}

// readCache returns a live cached response, or nil on any miss or
// failure.
func (s *Service) readCache(ctx context.Context, query string) *domain.AggregatedResponse {
	if s.deps.Cache == nil {
		return nil
	}

	data, err := s.deps.Cache.Get(ctx, cacheKey(query))
	if err != nil || data == nil {
		return nil
	}

	var cached domain.AggregatedResponse
	if err := json.Unmarshal(data, &cached); err != nil {
		s.logWarn("cache entry unreadable", &coreerrors.CacheError{Op: "get", Err: err})
		return nil
	}
	return &cached
}

// writeCache stores the response wholesale, overwriting any existing
// entry for the key. Failures degrade to a no-op.
func (s *Service) writeCache(ctx context.Context, query string, response *domain.AggregatedResponse) {
	if s.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(response)
	if err != nil {
		s.logWarn("cache write failed", &coreerrors.CacheError{Op: "set", Err: err})
		return
	}
	if err := s.deps.Cache.Set(ctx, cacheKey(query), data, s.cfg.CacheTTL); err != nil {
		s.logWarn("cache write failed", &coreerrors.CacheError{Op: "set", Err: err})
	}
}

// AnswerQuestion researches the question with content enrichment and
// synthesizes a short attributed answer. The context map is accepted for
// callers that carry situational details (legal form, revenue) but does
// not alter retrieval.
func (s *Service) AnswerQuestion(ctx context.Context, question string, _ map[string]interface{}) (*domain.Answer, error) {
	response, err := s.Search(ctx, question, SearchOptions{
		NumResults:     5,
		UseCache:       true,
		IncludeContent: true,
	})
	if err != nil {
		return nil, err
	}

	result := s.synth.Synthesize(question, response)
	return &result, nil
}

func (s *Service) logWarn(msg string, err error) {
	if s.deps.Logger == nil {
		return
	}
	s.deps.Logger.Warn(msg, map[string]interface{}{
		"error": err.Error(),
	})
}
