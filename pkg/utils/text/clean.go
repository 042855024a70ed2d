// ABOUTME: Text utilities for whitespace normalization and truncation
// ABOUTME: Shared by the content fetcher and the answer synthesizer

package text

import (
	"regexp"
	"strings"
)

var (
	manyNewlines = regexp.MustCompile(`\n{3,}`)
	manySpaces   = regexp.MustCompile(`[ \t]{2,}`)
	spacedLines  = regexp.MustCompile(`[ \t]+\n`)
)

// Collapse normalizes whitespace: Windows line endings become \n, runs
// of three or more newlines become two, and repeated spaces collapse to
// one.
func Collapse(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = spacedLines.ReplaceAllString(s, "\n")
	s = manyNewlines.ReplaceAllString(s, "\n\n")
	s = manySpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Truncate shortens s to at most max runes.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// TruncateEllipsis shortens s to at most max runes and appends "..."
// when something was cut off.
func TruncateEllipsis(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
