package display

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Items      []string // Related names or terms (optional)
	ItemsLabel string   // Heading for Items, defaults to "Affected entries"
	Suggestion string   // Action to take (optional)
}

// Warning shows a formatted warning in yellow
func (r *Renderer) Warning(w Warning) {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Items) > 0 {
		label := w.ItemsLabel
		if label == "" {
			label = "Affected entries"
		}
		b.WriteString("    ")
		b.WriteString(label)
		b.WriteString(":\n")

		for i, item := range w.Items {
			b.WriteString(fmt.Sprintf("      %d. %s\n", i+1, item))
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion: ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	fmt.Fprint(r.out, r.paint(b.String(), color.FgYellow))
}

// SelectionWarnings renders one warning per selection clause not applied as written
func (r *Renderer) SelectionWarnings(warnings []string) {
	for _, msg := range warnings {
		r.Warning(Warning{Title: "Selection clause", Message: msg})
	}
}
