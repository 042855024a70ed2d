// ABOUTME: Lexical relevance scorer for research results
// ABOUTME: Pure keyword-based scoring, deterministic and explainable by design

package relevance

import "strings"

// Config holds the scoring increments. The defaults are empirically
// chosen; they are configuration, not load-bearing constants.
type Config struct {
	// QueryTokenWeight is added for each query token found in the text
	QueryTokenWeight float64

	// HighKeywordWeight is added per high-signal dictionary hit
	HighKeywordWeight float64

	// MediumKeywordWeight is added per medium-signal dictionary hit
	MediumKeywordWeight float64
}

// DefaultConfig returns the default scoring increments.
func DefaultConfig() Config {
	return Config{
		QueryTokenWeight:    0.2,
		HighKeywordWeight:   0.1,
		MediumKeywordWeight: 0.05,
	}
}

// highSignalKeywords are terms that strongly indicate German tax content.
var highSignalKeywords = []string{
	"steuer", "absetzen", "finanzamt", "einkommensteuer", "umsatzsteuer",
	"gewerbesteuer", "kleinunternehmer", "vorsteuer", "betriebsausgaben",
	"abschreibung", "afa", "steuererklärung", "elster", "§", "paragraph",
	"gesetz", "bmf", "urteil", "bfh",
}

// mediumSignalKeywords are weaker indicators of tax content.
var mediumSignalKeywords = []string{
	"sparen", "optimierung", "frist", "termin", "pflicht", "anmeldung",
	"vorauszahlung", "bescheid", "einspruch", "freibetrag", "pauschale",
}

// Scorer computes lexical relevance scores. It is stateless apart from
// its read-only configuration and safe for concurrent use.
type Scorer struct {
	cfg Config
}

// NewScorer creates a scorer with the given configuration.
func NewScorer(cfg Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// NewDefaultScorer creates a scorer with the default increments.
func NewDefaultScorer() *Scorer {
	return NewScorer(DefaultConfig())
}

// Score returns a relevance score in [0,1] for the text against the
// query. Each query token found as a substring of the lowercased text
// adds QueryTokenWeight; dictionary hits add their respective weights.
// The sum is clamped to 1.
func (s *Scorer) Score(text, query string) float64 {
	textLower := strings.ToLower(text)
	score := 0.0

	for _, word := range strings.Fields(strings.ToLower(query)) {
		if strings.Contains(textLower, word) {
			score += s.cfg.QueryTokenWeight
		}
	}

	for _, keyword := range highSignalKeywords {
		if strings.Contains(textLower, keyword) {
			score += s.cfg.HighKeywordWeight
		}
	}

	for _, keyword := range mediumSignalKeywords {
		if strings.Contains(textLower, keyword) {
			score += s.cfg.MediumKeywordWeight
		}
	}

	if score > 1.0 {
		return 1.0
	}
	if score < 0 {
		return 0
	}
	return score
}

// IsRelevant reports whether the text plausibly answers the query.
// Adapters use it as a cheap pre-filter before handing results to the
// merge step. A text passes when at least 30% of the query words longer
// than two runes appear in it, or at least two of them do.
func IsRelevant(text, query string) bool {
	textLower := strings.ToLower(text)

	var queryWords []string
	for _, w := range strings.Fields(strings.ToLower(query)) {
		if len([]rune(w)) > 2 {
			queryWords = append(queryWords, w)
		}
	}
	if len(queryWords) == 0 {
		return false
	}

	matches := 0
	for _, w := range queryWords {
		if strings.Contains(textLower, w) {
			matches++
		}
	}

	return float64(matches) >= float64(len(queryWords))*0.3 || matches >= 2
}
