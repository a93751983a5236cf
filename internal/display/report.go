package display

import (
	"fmt"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/harrison/missfind/internal/models"
	"gopkg.in/yaml.v3"
)

// LoadedTerms prints how many search terms were read and from where
func (r *Renderer) LoadedTerms(count int, source string) {
	fmt.Fprintf(r.out, "Loaded %s search terms from %s\n", groupDigits(count), source)
}

// LoadedText prints the size of the text haystack in characters
func (r *Renderer) LoadedText(source, content string) {
	fmt.Fprintf(r.out, "Loaded target file %s (%s characters)\n", source, groupDigits(utf8.RuneCountInString(content)))
}

// LoadedListing prints the size of a list haystack
func (r *Renderer) LoadedListing(count int, source string) {
	fmt.Fprintf(r.out, "Comparing against %s files from %s\n", groupDigits(count), source)
}

// Report prints the counts and then either the found or the missing terms
func (r *Renderer) Report(report models.Report, showFound bool) {
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "%s %d terms\n", r.paint("Found:", color.FgGreen), report.FoundCount)
	fmt.Fprintf(r.out, "%s %d terms\n", r.paint("Missing:", color.FgRed), report.MissingCount)
	fmt.Fprintln(r.out)

	if showFound {
		if len(report.Found) == 0 {
			fmt.Fprintln(r.out, "No search terms were found.")
			return
		}
		fmt.Fprintln(r.out, r.paint("Found terms:", color.Bold))
		for _, term := range report.Found {
			fmt.Fprintln(r.out, term)
		}
		return
	}

	if len(report.Missing) == 0 {
		fmt.Fprintln(r.out, "All search terms were found.")
		return
	}
	fmt.Fprintln(r.out, r.paint("Missing terms:", color.Bold))
	for _, term := range report.Missing {
		fmt.Fprintln(r.out, term)
	}
}

// YAML prints the report as a YAML document
func (r *Renderer) YAML(report models.Report) error {
	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}

// CountMismatch warns that found and missing do not add up to total,
// listing duplicated input terms as the likely cause
func (r *Renderer) CountMismatch(err error, duplicates []string) {
	w := Warning{
		Title:   "Count mismatch",
		Message: err.Error(),
	}
	if len(duplicates) > 0 {
		w.Items = duplicates
		w.ItemsLabel = fmt.Sprintf("%d duplicated search terms", len(duplicates))
	}
	r.Warning(w)
}
