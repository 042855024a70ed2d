// ABOUTME: Tests for whitespace normalization and truncation helpers

package text

import "testing"

func TestCollapse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"windows line endings", "a\r\nb", "a\nb"},
		{"bare carriage return", "a\rb", "a\nb"},
		{"newline runs", "a\n\n\n\nb", "a\n\nb"},
		{"repeated spaces", "a    b", "a b"},
		{"trailing spaces before newline", "a  \nb", "a\nb"},
		{"surrounding whitespace", "  a  ", "a"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collapse(tc.in); got != tc.want {
				t.Errorf("Collapse(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTruncate_ShortStringUnchanged(t *testing.T) {
	if got := Truncate("kurz", 10); got != "kurz" {
		t.Errorf("Truncate = %q", got)
	}
}

func TestTruncate_CutsAtRuneBoundary(t *testing.T) {
	if got := Truncate("größer", 4); got != "größ" {
		t.Errorf("Truncate = %q, want größ", got)
	}
}

func TestTruncateEllipsis(t *testing.T) {
	if got := TruncateEllipsis("abcdef", 3); got != "abc..." {
		t.Errorf("TruncateEllipsis = %q, want abc...", got)
	}
	if got := TruncateEllipsis("abc", 3); got != "abc" {
		t.Errorf("TruncateEllipsis = %q, want unchanged", got)
	}
}
