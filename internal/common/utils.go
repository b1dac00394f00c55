package common

import (
	"regexp"
	"strings"
)

var markdownLinkPattern = regexp.MustCompile(`^\[.*?\]\((https?://[^\)]+)\)$`)

// SanitizeURL performs basic cleanup on a target URL to handle common copy-paste issues.
// Removes whitespace, wrapping punctuation and markdown artifacts, and adds an http://
// scheme when none is given.
func SanitizeURL(rawURL string) string {
	cleaned := strings.TrimSpace(rawURL)

	// [text](url) -> url
	if matches := markdownLinkPattern.FindStringSubmatch(cleaned); len(matches) > 1 {
		cleaned = matches[1]
	}

	for _, char := range []string{",", ")", "}", "]", "\"", "'", ">", ";"} {
		cleaned = strings.TrimSuffix(cleaned, char)
	}
	for _, char := range []string{"(", "[", "<", "\"", "'"} {
		cleaned = strings.TrimPrefix(cleaned, char)
	}
	cleaned = strings.TrimSpace(cleaned)

	if cleaned != "" && !strings.Contains(cleaned, "://") {
		cleaned = "http://" + cleaned
	}
	return cleaned
}
