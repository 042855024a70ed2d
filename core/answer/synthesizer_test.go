// ABOUTME: Tests for answer synthesis from ranked aggregated responses
// ABOUTME: Covers fallback, paragraph selection, snippet fallback, confidence and attribution

package answer

import (
	"strings"
	"testing"

	"taxresearch-api/core/domain"
)

func TestSynthesize_NilResponseFallsBack(t *testing.T) {
	s := NewSynthesizer()

	ans := s.Synthesize("Kleinunternehmer Grenze", nil)

	if ans.Answer != FallbackMessage {
		t.Errorf("Answer = %q, want fallback", ans.Answer)
	}
	if ans.Confidence != 0.3 {
		t.Errorf("Confidence = %v, want 0.3", ans.Confidence)
	}
	if ans.Sources == nil || len(ans.Sources) != 0 {
		t.Errorf("Sources = %v, want empty slice", ans.Sources)
	}
}

func TestSynthesize_EmptyResultsFallsBack(t *testing.T) {
	s := NewSynthesizer()

	ans := s.Synthesize("Kleinunternehmer Grenze", &domain.AggregatedResponse{})

	if ans.Answer != FallbackMessage {
		t.Errorf("Answer = %q, want fallback", ans.Answer)
	}
	if ans.Confidence >= 0.5 {
		t.Errorf("Confidence = %v, want below 0.5 for fallback", ans.Confidence)
	}
}

func TestSynthesize_PicksRelevantParagraph(t *testing.T) {
	s := NewSynthesizer()
	relevant := "Die Kleinunternehmerregelung nach § 19 UStG befreit Unternehmer von der Umsatzsteuer, " +
		"wenn der Umsatz im Vorjahr unter der Grenze von 22.000 Euro lag."
	content := "Kurzer Teaser.\n" + relevant + "\nWeiterer kurzer Absatz."

	resp := &domain.AggregatedResponse{
		Query: "Kleinunternehmerregelung Umsatzsteuer Grenze",
		Results: []domain.SearchResult{
			{
				Title:          "UStG § 19",
				URL:            "https://www.gesetze-im-internet.de/ustg__19.html",
				Snippet:        "Amtlicher Gesetzestext.",
				Source:         "gesetze-im-internet",
				Content:        content,
				RelevanceScore: 0.9,
			},
		},
	}

	ans := s.Synthesize("Kleinunternehmerregelung Umsatzsteuer Grenze", resp)

	if !strings.Contains(ans.Answer, relevant) {
		t.Errorf("Answer does not quote the relevant paragraph: %q", ans.Answer)
	}
	if strings.Contains(ans.Answer, "Kurzer Teaser") {
		t.Error("Answer quotes a paragraph below the length minimum")
	}
}

func TestSynthesize_SnippetFallbackWithoutContent(t *testing.T) {
	s := NewSynthesizer()
	resp := &domain.AggregatedResponse{
		Results: []domain.SearchResult{
			{
				Title:          "Umsatzsteuer Fristen",
				URL:            "https://www.haufe.de/steuern/fristen",
				Snippet:        "Die Umsatzsteuervoranmeldung ist bis zum zehnten Tag des Folgemonats abzugeben.",
				Source:         "haufe",
				RelevanceScore: 0.6,
			},
		},
	}

	ans := s.Synthesize("Umsatzsteuervoranmeldung Frist", resp)

	if !strings.Contains(ans.Answer, "zehnten Tag des Folgemonats") {
		t.Errorf("Answer missing snippet text: %q", ans.Answer)
	}
}

func TestSynthesize_ConfidenceFromTopScore(t *testing.T) {
	s := NewSynthesizer()
	resp := &domain.AggregatedResponse{
		Results: []domain.SearchResult{
			{Title: "A", URL: "https://a", Snippet: "Die Umsatzsteuer ist eine Verkehrsteuer in Deutschland.", Source: "a", RelevanceScore: 0.5},
		},
	}

	ans := s.Synthesize("Umsatzsteuer", resp)

	if ans.Confidence != 0.7 {
		t.Errorf("Confidence = %v, want 0.7 (top score + 0.2)", ans.Confidence)
	}
}

func TestSynthesize_ConfidenceCapped(t *testing.T) {
	s := NewSynthesizer()
	resp := &domain.AggregatedResponse{
		Results: []domain.SearchResult{
			{Title: "A", URL: "https://a", Snippet: "Die Umsatzsteuer ist eine Verkehrsteuer in Deutschland.", Source: "a", RelevanceScore: 0.9},
		},
	}

	ans := s.Synthesize("Umsatzsteuer", resp)

	if ans.Confidence != 0.95 {
		t.Errorf("Confidence = %v, want capped at 0.95", ans.Confidence)
	}
}

func TestSynthesize_AttributionListsDistinctSources(t *testing.T) {
	s := NewSynthesizer()
	snippet := "Die Umsatzsteuervoranmeldung ist monatlich oder vierteljährlich abzugeben."
	resp := &domain.AggregatedResponse{
		Results: []domain.SearchResult{
			{Title: "A", URL: "https://a", Snippet: snippet, Source: "haufe", RelevanceScore: 0.8},
			{Title: "B", URL: "https://b", Snippet: snippet, Source: "haufe", RelevanceScore: 0.7},
			{Title: "C", URL: "https://c", Snippet: snippet, Source: "finanztip", RelevanceScore: 0.6},
		},
	}

	ans := s.Synthesize("Umsatzsteuervoranmeldung", resp)

	if !strings.Contains(ans.Answer, "(Quellen: haufe, finanztip)") {
		t.Errorf("Answer attribution wrong: %q", ans.Answer)
	}
}

func TestSynthesize_AnswerLengthBounded(t *testing.T) {
	s := NewSynthesizer()
	long := strings.Repeat("Die Umsatzsteuer ist eine Steuer auf den Umsatz von Waren und Dienstleistungen. ", 40)
	resp := &domain.AggregatedResponse{
		Results: []domain.SearchResult{
			{Title: "A", URL: "https://a", Snippet: long, Source: "a", RelevanceScore: 0.8},
		},
	}

	ans := s.Synthesize("Umsatzsteuer", resp)

	body := ans.Answer
	if idx := strings.Index(body, "\n\n(Quellen:"); idx >= 0 {
		body = body[:idx]
	}
	if n := len([]rune(body)); n > 1003 {
		t.Errorf("answer body length = %d runes, want at most 1000 plus ellipsis", n)
	}
	if !strings.HasSuffix(body, "...") {
		t.Errorf("truncated answer missing ellipsis: %q", body[len(body)-20:])
	}
}

func TestSynthesize_SourcesMirrorTopResults(t *testing.T) {
	s := NewSynthesizer()
	snippet := "Die Umsatzsteuer ist eine Verkehrsteuer in Deutschland und Europa."
	results := make([]domain.SearchResult, 5)
	for i := range results {
		results[i] = domain.SearchResult{
			Title:          "R",
			URL:            "https://r.example.com/" + string(rune('a'+i)),
			Snippet:        snippet,
			Source:         "r",
			RelevanceScore: 0.5,
		}
	}

	ans := s.Synthesize("Umsatzsteuer", &domain.AggregatedResponse{Results: results})

	if len(ans.Sources) != 3 {
		t.Errorf("Sources = %d, want 3 (contribution limit)", len(ans.Sources))
	}
}
