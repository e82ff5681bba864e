// Package textutil holds small text and URL helpers shared by the
// collector and the report layer.
package textutil

import (
	"regexp"
	"strings"
)

var spaceRe = regexp.MustCompile(`\s+`)

// CleanText collapses runs of whitespace and trims the result.
func CleanText(text string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
}

// Domain extracts the lowercase host from a URL, dropping protocol,
// path and port.
func Domain(rawURL string) string {
	s := rawURL
	if idx := strings.Index(s, "://"); idx > 0 {
		s = s[idx+3:]
	}
	if idx := strings.Index(s, "/"); idx > 0 {
		s = s[:idx]
	}
	if idx := strings.Index(s, ":"); idx > 0 {
		s = s[:idx]
	}
	return strings.ToLower(s)
}

// TruncateText shortens text to maxLength, breaking on a word boundary.
func TruncateText(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}
	truncated := text[:maxLength]
	if lastSpace := strings.LastIndex(truncated, " "); lastSpace > 0 {
		truncated = truncated[:lastSpace]
	}
	return truncated + "..."
}
