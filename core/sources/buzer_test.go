// ABOUTME: Tests for the buzer.de statute adapter
// ABOUTME: Covers statute ID resolution and title extraction

package sources

import (
	"context"
	"strings"
	"testing"
)

func TestBuzerAdapter_ResolvesStatuteID(t *testing.T) {
	statuteURL := "https://www.buzer.de/gesetz/4605/index.htm"
	client := newMockClient(map[string]*mockResponse{
		statuteURL: {statusCode: 200, body: "<html><head><title>Umsatzsteuergesetz</title></head><body></body></html>"},
	})
	a := NewBuzerAdapter(client)

	results, err := a.Fetch(context.Background(), "Umsatzsteuer Voranmeldung", 5)

	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if results[0].URL != statuteURL {
		t.Errorf("URL = %q, want %q", results[0].URL, statuteURL)
	}
	if !strings.Contains(results[0].Title, "Umsatzsteuergesetz") {
		t.Errorf("Title = %q, want page title included", results[0].Title)
	}
	if !strings.Contains(results[0].Title, "Änderungshistorie") {
		t.Errorf("Title = %q, want amendment history marker", results[0].Title)
	}
}

func TestBuzerAdapter_DefaultsToEStG(t *testing.T) {
	statuteURL := "https://www.buzer.de/gesetz/4499/index.htm"
	client := newMockClient(map[string]*mockResponse{
		statuteURL: {statusCode: 200, body: "<html><head><title>EStG</title></head><body></body></html>"},
	})
	a := NewBuzerAdapter(client)

	results, err := a.Fetch(context.Background(), "Dienstreise Pauschalen", 5)

	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if len(results) != 1 || results[0].URL != statuteURL {
		t.Errorf("results = %+v, want single EStG default", results)
	}
}

func TestBuzerAdapter_FetchFailureYieldsEmpty(t *testing.T) {
	a := NewBuzerAdapter(newMockClient(nil))

	results, err := a.Fetch(context.Background(), "Umsatzsteuer", 5)

	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %d, want 0", len(results))
	}
}
