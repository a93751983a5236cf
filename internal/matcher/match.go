package matcher

import (
	"strings"

	"github.com/harrison/missfind/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Haystack reports whether a single search term is present
type Haystack interface {
	Contains(term string) bool
}

// Text is a free-text haystack searched by literal substring
type Text struct {
	folded string
}

// NewText prepares content for case-insensitive literal search
func NewText(content string) *Text {
	return &Text{folded: Fold(content)}
}

// Contains reports whether term, or failing that its basename, occurs in the text
func (t *Text) Contains(term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return false
	}
	if strings.Contains(t.folded, Fold(term)) {
		return true
	}
	base := Basename(term)
	if base == "" || base == term {
		return false
	}
	return strings.Contains(t.folded, Fold(base))
}

// List is an exact-membership haystack over a listing of names
type List struct {
	names map[string]struct{}
}

// NewList indexes names for case-insensitive exact lookup
func NewList(names []string) *List {
	l := &List{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		l.names[Fold(strings.TrimSpace(name))] = struct{}{}
	}
	return l
}

// Contains reports whether term, or failing that its basename, equals a listed name
func (l *List) Contains(term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return false
	}
	if _, ok := l.names[Fold(term)]; ok {
		return true
	}
	base := Basename(term)
	if base == "" || base == term {
		return false
	}
	_, ok := l.names[Fold(base)]
	return ok
}

// Len returns the number of distinct listed names
func (l *List) Len() int {
	return len(l.names)
}

// Partition checks every term against h. Each term is appended to exactly
// one of the returned lists, in input order.
func Partition(terms []string, h Haystack) models.ComparisonResult {
	result := models.ComparisonResult{
		Found:   make([]string, 0, len(terms)),
		Missing: make([]string, 0),
	}
	for _, term := range terms {
		if h.Contains(term) {
			result.Found = append(result.Found, term)
		} else {
			result.Missing = append(result.Missing, term)
		}
	}
	return result
}

// Fold returns the caseless comparison form of s.
// A fresh Caser is used per call since Caser keeps state.
func Fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}
