// Package selection parses selection expressions over a sorted directory listing.
//
// An expression is a ';'-separated list of clauses. Each clause is one of:
//
//	b.txt           a listed filename (case-insensitive, exact)
//	3               a 1-based index into the listing
//	b.txt-d.txt     an inclusive range between two listed filenames
//
// A clause containing '-' is always a range, split on its first '-'. A listed
// file whose name contains '-' can therefore only be picked by its index. Bare
// tokens are tried as filenames before indices, so a file named "3" wins over
// the third entry. Commas do not separate clauses.
//
// Clauses that cannot be applied are skipped with a warning. When unknown
// names are allowed, unresolved names are kept as extras instead; range
// endpoints and names containing ',' are kept with a warning.
package selection

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/harrison/missfind/internal/matcher"
	"github.com/harrison/missfind/internal/models"
)

const (
	clauseSeparator = ";"
	rangeSeparator  = "-"
	listSeparator   = ","
)

// Parse resolves expression against files.
// With allowUnknown, names that are not listed become extras rather than warnings.
func Parse(expression string, files []string, allowUnknown bool) models.Selection {
	p := newParser(files, allowUnknown)
	for _, clause := range strings.Split(expression, clauseSeparator) {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		p.apply(clause)
	}
	return p.result()
}

// parser accumulates the outcome of applying clauses in order
type parser struct {
	files        []string
	lookup       map[string]int
	allowUnknown bool

	indices  map[int]struct{}
	extras   []string
	warnings []string
}

func newParser(files []string, allowUnknown bool) *parser {
	lookup := make(map[string]int, len(files))
	for i, name := range files {
		key := matcher.Fold(name)
		// First listing entry wins when names differ only by case
		if _, exists := lookup[key]; !exists {
			lookup[key] = i + 1
		}
	}
	return &parser{
		files:        files,
		lookup:       lookup,
		allowUnknown: allowUnknown,
		indices:      make(map[int]struct{}),
	}
}

func (p *parser) apply(clause string) {
	if start, end, isRange := strings.Cut(clause, rangeSeparator); isRange {
		p.applyRange(clause, strings.TrimSpace(start), strings.TrimSpace(end))
		return
	}
	p.applyToken(clause)
}

func (p *parser) applyRange(clause, startToken, endToken string) {
	if startToken == "" || endToken == "" {
		p.warn("malformed range %q: expected <start-file>-<end-file>, skipping", clause)
		return
	}

	startIdx, startOK := p.resolve(startToken)
	endIdx, endOK := p.resolve(endToken)

	if !startOK || !endOK {
		for _, unresolved := range []struct {
			token string
			ok    bool
		}{{startToken, startOK}, {endToken, endOK}} {
			if unresolved.ok {
				continue
			}
			if p.allowUnknown {
				p.warn("file %q in range %q not found in listing, kept as a name (pick filenames containing '-' by index)", unresolved.token, clause)
				p.keep(unresolved.token)
			} else {
				p.warn("file %q in range %q not found in listing, skipping", unresolved.token, clause)
			}
		}
		return
	}

	if startIdx > endIdx {
		p.warn("range %q starts after it ends alphabetically (%d > %d), skipping", clause, startIdx, endIdx)
		return
	}

	for idx := startIdx; idx <= endIdx; idx++ {
		p.indices[idx] = struct{}{}
	}
}

func (p *parser) applyToken(token string) {
	if idx, ok := p.resolve(token); ok {
		p.indices[idx] = struct{}{}
		return
	}

	if n, err := strconv.Atoi(token); err == nil {
		if n < 1 || n > len(p.files) {
			p.warn("index %d out of range (1-%d), skipping", n, len(p.files))
			return
		}
		p.indices[n] = struct{}{}
		return
	}

	if p.allowUnknown {
		p.keep(token)
		return
	}
	p.warn("%q is neither a listed filename nor an index, skipping", token)
}

// keep records an unresolved name as an extra
func (p *parser) keep(name string) {
	if strings.Contains(name, listSeparator) {
		p.warn("%q contains ',' but clauses are separated by ';', kept as one name", name)
	}
	p.extras = append(p.extras, name)
}

// resolve finds the 1-based index of a listed filename, ignoring case
func (p *parser) resolve(name string) (int, bool) {
	idx, ok := p.lookup[matcher.Fold(name)]
	return idx, ok
}

func (p *parser) warn(format string, args ...interface{}) {
	p.warnings = append(p.warnings, fmt.Sprintf(format, args...))
}

func (p *parser) result() models.Selection {
	indices := make([]int, 0, len(p.indices))
	for idx := range p.indices {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	return models.Selection{
		Indices:  indices,
		Extras:   p.extras,
		Warnings: p.warnings,
	}
}

// Resolve parses expression and returns the selected filenames: listed
// files ascending by index, then extras in encounter order.
func Resolve(expression string, files []string, allowUnknown bool) ([]string, models.Selection) {
	sel := Parse(expression, files, allowUnknown)
	return sel.Names(files), sel
}
