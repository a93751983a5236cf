package models

import "fmt"

// Comparison modes
const (
	ModeFile        = "file"        // Terms file searched in a text file
	ModeInteractive = "interactive" // Source selection checked against a destination listing
)

// ComparisonResult partitions the search terms into found and missing lists.
// Both lists keep the input order and duplicates.
type ComparisonResult struct {
	Found   []string // Terms present in the haystack
	Missing []string // Terms absent from the haystack
}

// Total returns the number of partitioned terms
func (r ComparisonResult) Total() int {
	return len(r.Found) + len(r.Missing)
}

// Check verifies that every one of total input terms landed in exactly one list.
func (r ComparisonResult) Check(total int) error {
	if r.Total() != total {
		return fmt.Errorf("count mismatch: %d found + %d missing != %d search terms",
			len(r.Found), len(r.Missing), total)
	}
	return nil
}

// DuplicateTerms returns each term value that occurs more than once in terms,
// in order of its second occurrence.
func DuplicateTerms(terms []string) []string {
	seen := make(map[string]int, len(terms))
	var dups []string
	for _, term := range terms {
		seen[term]++
		if seen[term] == 2 {
			dups = append(dups, term)
		}
	}
	return dups
}
