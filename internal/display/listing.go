package display

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

const (
	cellGap      = 2
	listIndent   = 2
	ellipsis     = "…"
	minNameWidth = 8
)

// Listing prints files with their 1-based selection indices.
// verbose prints one entry per line with full names; otherwise entries are
// packed into columns that fit r.Width.
func (r *Renderer) Listing(title string, files []string, verbose bool) {
	fmt.Fprintf(r.out, "%s (%d files):\n", r.paint(title, color.Bold), len(files))
	if len(files) == 0 {
		fmt.Fprintln(r.out, "  (no files)")
		return
	}

	indexWidth := len(fmt.Sprintf("[%d]", len(files)))

	if verbose {
		for i, name := range files {
			fmt.Fprintf(r.out, "%s%s %s\n", strings.Repeat(" ", listIndent), r.index(i+1, indexWidth), name)
		}
		return
	}

	for _, line := range r.compactRows(files, indexWidth) {
		fmt.Fprintln(r.out, line)
	}
}

// index renders a right-aligned "[n]" label
func (r *Renderer) index(n, width int) string {
	label := fmt.Sprintf("%*s", width, fmt.Sprintf("[%d]", n))
	return r.paint(label, color.FgYellow)
}

// compactRows lays files out column-major, like ls
func (r *Renderer) compactRows(files []string, indexWidth int) []string {
	width := r.Width
	if width <= 0 {
		width = defaultWidth
	}

	available := width - listIndent
	maxName := available - indexWidth - 1
	if maxName < minNameWidth {
		maxName = minNameWidth
	}

	names := make([]string, len(files))
	nameWidth := 0
	for i, name := range files {
		names[i] = runewidth.Truncate(name, maxName, ellipsis)
		if w := runewidth.StringWidth(names[i]); w > nameWidth {
			nameWidth = w
		}
	}

	cellWidth := indexWidth + 1 + nameWidth
	columns := (available + cellGap) / (cellWidth + cellGap)
	if columns < 1 {
		columns = 1
	}
	rows := (len(files) + columns - 1) / columns

	lines := make([]string, 0, rows)
	for row := 0; row < rows; row++ {
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", listIndent))
		for col := 0; col < columns; col++ {
			i := col*rows + row
			if i >= len(files) {
				break
			}
			if col > 0 {
				b.WriteString(strings.Repeat(" ", cellGap))
			}
			b.WriteString(r.index(i+1, indexWidth))
			b.WriteString(" ")
			last := col == columns-1 || (col+1)*rows+row >= len(files)
			if last {
				b.WriteString(names[i])
			} else {
				b.WriteString(runewidth.FillRight(names[i], nameWidth))
			}
		}
		lines = append(lines, b.String())
	}
	return lines
}

// Selected prints the resolved selection, one name per line
func (r *Renderer) Selected(title string, names []string) {
	fmt.Fprintf(r.out, "%s (%d):\n", r.paint(title, color.Bold), len(names))
	for _, name := range names {
		fmt.Fprintf(r.out, "  %s\n", name)
	}
}
