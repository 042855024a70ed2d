// ABOUTME: Search domain models for aggregated research results
// ABOUTME: Defines the result and response structures shared by adapters, aggregator and cache

package domain

import "time"

// SearchResult represents one candidate finding from a single source.
type SearchResult struct {
	// Title is the human-readable title of the finding
	Title string `json:"title"`

	// URL is the canonical URL, used as the dedupe key across sources
	URL string `json:"url"`

	// Snippet is a short preview of the content
	Snippet string `json:"snippet"`

	// Source identifies the adapter that produced the result
	Source string `json:"source"`

	// PublishedDate is the publication date if the source provides one
	PublishedDate *time.Time `json:"date,omitempty"`

	// RelevanceScore is in [0,1]. The aggregator recomputes it after the
	// merge step; a score set by an adapter is advisory only.
	RelevanceScore float64 `json:"relevance_score"`

	// Content holds the full text, populated lazily for top results only
	Content string `json:"content,omitempty"`

	// Metadata carries open-ended per-source extras
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// AggregatedResponse is the unit returned to callers and the unit of caching.
type AggregatedResponse struct {
	// Query is the original query, not normalized
	Query string `json:"query"`

	// Results is ordered descending by RelevanceScore; ties keep fan-out
	// order. Contains no two entries with the same URL.
	Results []SearchResult `json:"results"`

	// TotalFound counts merged results before dedupe and truncation
	TotalFound int `json:"total_found"`

	// SearchTimeMs is the elapsed wall-clock time of the aggregation
	SearchTimeMs int64 `json:"search_time_ms"`

	// SourcesUsed lists the adapters that returned at least one result
	SourcesUsed []string `json:"sources_used"`

	// Timestamp is the instant the response was computed
	Timestamp time.Time `json:"timestamp"`
}

// AnswerSource attributes one result that contributed to an answer.
type AnswerSource struct {
	Title     string  `json:"title"`
	URL       string  `json:"url"`
	Relevance float64 `json:"relevance"`
}

// Answer is a short synthesized reply with source attribution.
type Answer struct {
	Answer       string         `json:"answer"`
	Confidence   float64        `json:"confidence"`
	Sources      []AnswerSource `json:"sources"`
	SearchTimeMs int64          `json:"search_time_ms,omitempty"`
}
