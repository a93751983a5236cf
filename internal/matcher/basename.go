package matcher

import "strings"

// Basename returns the last non-empty path segment of term.
// Both '/' and '\' separate segments. Returns "" when term has no segment.
func Basename(term string) string {
	normalized := strings.ReplaceAll(strings.TrimSpace(term), `\`, "/")
	segments := strings.Split(normalized, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i]
		}
	}
	return ""
}
