package models

import "sort"

// Selection is the outcome of parsing a selection expression against a listing.
type Selection struct {
	Indices  []int    // 1-based listing positions, ascending, unique
	Extras   []string // Unresolved tokens kept as expected names, encounter order
	Warnings []string // One entry per skipped clause
}

// IsEmpty reports whether the selection picks nothing
func (s Selection) IsEmpty() bool {
	return len(s.Indices) == 0 && len(s.Extras) == 0
}

// Names resolves the selection against files: indexed names ascending by
// index, followed by the extra names.
func (s Selection) Names(files []string) []string {
	indices := append([]int(nil), s.Indices...)
	sort.Ints(indices)

	names := make([]string, 0, len(indices)+len(s.Extras))
	for _, idx := range indices {
		if idx < 1 || idx > len(files) {
			continue
		}
		names = append(names, files[idx-1])
	}
	return append(names, s.Extras...)
}
