// ABOUTME: Answer synthesizer building a short attributed reply from a ranked response
// ABOUTME: Selects question-relevant paragraphs from enriched results, falls back to snippets

package answer

import (
	"strings"

	"taxresearch-api/core/domain"
	"taxresearch-api/pkg/utils/text"
)

const (
	// maxAnswerLength caps the combined answer text
	maxAnswerLength = 1000

	// minParagraphLength is the shortest paragraph worth quoting
	minParagraphLength = 100

	// overlapThreshold is the share of distinct question words a
	// paragraph must contain to be considered relevant
	overlapThreshold = 0.2

	// maxContributingResults bounds how many results feed the answer
	maxContributingResults = 3
)

// FallbackMessage is returned when no source yielded anything usable.
// This is a terminal state, not an error.
const FallbackMessage = "Leider konnte ich keine relevanten Informationen zu Ihrer Frage finden. " +
	"Bitte konsultieren Sie einen Steuerberater."

// Synthesizer turns an already-ranked aggregated response into a short
// natural-language answer with source attribution. It never re-queries
// sources.
type Synthesizer struct{}

// NewSynthesizer creates a synthesizer.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{}
}

// Synthesize builds an answer from the top results of the response.
func (s *Synthesizer) Synthesize(question string, resp *domain.AggregatedResponse) domain.Answer {
	if resp == nil || len(resp.Results) == 0 {
		return domain.Answer{
			Answer:     FallbackMessage,
			Confidence: 0.3,
			Sources:    []domain.AnswerSource{},
		}
	}

	top := resp.Results
	if len(top) > maxContributingResults {
		top = top[:maxContributingResults]
	}

	var fragments []string
	for _, result := range top {
		if result.Content != "" {
			if para := relevantParagraph(result.Content, question); para != "" {
				fragments = append(fragments, para)
				continue
			}
		}
		if result.Snippet != "" {
			fragments = append(fragments, result.Snippet)
		}
	}

	sources := make([]domain.AnswerSource, 0, len(top))
	for _, result := range top {
		sources = append(sources, domain.AnswerSource{
			Title:     result.Title,
			URL:       result.URL,
			Relevance: result.RelevanceScore,
		})
	}

	confidence := top[0].RelevanceScore + 0.2
	if confidence > 0.95 {
		confidence = 0.95
	}

	return domain.Answer{
		Answer:       formatAnswer(fragments, top),
		Confidence:   confidence,
		Sources:      sources,
		SearchTimeMs: resp.SearchTimeMs,
	}
}

// relevantParagraph returns the first paragraph of the content whose
// word overlap with the question reaches the threshold and whose length
// exceeds the minimum, or an empty string.
func relevantParagraph(content, question string) string {
	questionWords := distinctWords(question)
	if len(questionWords) == 0 {
		return ""
	}

	for _, para := range strings.Split(content, "\n") {
		para = strings.TrimSpace(para)
		if len(para) <= minParagraphLength {
			continue
		}

		paraWords := distinctWords(para)
		overlap := 0
		for w := range questionWords {
			if _, ok := paraWords[w]; ok {
				overlap++
			}
		}

		if float64(overlap) >= float64(len(questionWords))*overlapThreshold {
			return para
		}
	}
	return ""
}

// distinctWords lowercases and splits s into a word set.
func distinctWords(s string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(s)) {
		words[w] = struct{}{}
	}
	return words
}

// formatAnswer joins the fragments, bounds the length and appends a
// deterministic attribution line listing the distinct sources used.
func formatAnswer(fragments []string, top []domain.SearchResult) string {
	if len(fragments) == 0 {
		for _, r := range top {
			if len(r.Snippet) > 30 {
				fragments = append(fragments, r.Snippet)
			}
		}
	}
	if len(fragments) == 0 {
		return FallbackMessage
	}

	if len(fragments) > maxContributingResults {
		fragments = fragments[:maxContributingResults]
	}
	combined := text.TruncateEllipsis(strings.Join(fragments, " "), maxAnswerLength)

	if attribution := attributionLine(top); attribution != "" {
		combined += "\n\n" + attribution
	}
	return combined
}

// attributionLine lists the distinct source identifiers of the top two
// results in first-seen order.
func attributionLine(top []domain.SearchResult) string {
	var names []string
	seen := make(map[string]struct{})
	for _, r := range top {
		if len(names) >= 2 {
			break
		}
		if _, ok := seen[r.Source]; ok {
			continue
		}
		seen[r.Source] = struct{}{}
		names = append(names, r.Source)
	}
	if len(names) == 0 {
		return ""
	}
	return "(Quellen: " + strings.Join(names, ", ") + ")"
}
