package display

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/harrison/missfind/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleReport() models.Report {
	return models.Report{
		RunID:          "run-1",
		Mode:           models.ModeFile,
		TermsSource:    "terms.txt",
		HaystackSource: "target.log",
		Total:          3,
		FoundCount:     1,
		MissingCount:   2,
		Found:          []string{"x.log"},
		Missing:        []string{"y.log", "z.log"},
	}
}

func TestReportMissing(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, false).Report(sampleReport(), false)

	assert.Equal(t, "\nFound: 1 terms\nMissing: 2 terms\n\nMissing terms:\ny.log\nz.log\n", buf.String())
}

func TestReportFound(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, false).Report(sampleReport(), true)

	out := buf.String()
	assert.Contains(t, out, "Found terms:\nx.log\n")
	assert.NotContains(t, out, "y.log")
}

func TestReportEmptyLists(t *testing.T) {
	report := models.Report{Total: 1, FoundCount: 1, Found: []string{"a"}}

	var buf bytes.Buffer
	NewRenderer(&buf, false).Report(report, false)
	assert.Contains(t, buf.String(), "All search terms were found.")

	buf.Reset()
	report = models.Report{Total: 1, MissingCount: 1, Missing: []string{"a"}}
	NewRenderer(&buf, false).Report(report, true)
	assert.Contains(t, buf.String(), "No search terms were found.")
}

func TestReportNoColorCodes(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, false).Report(sampleReport(), false)
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestReportColor(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, true).Report(sampleReport(), false)
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "y.log\n")
}

func TestLoadedLines(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, false)

	r.LoadedTerms(2, "terms.txt")
	r.LoadedText("target.log", strings.Repeat("é", 1234))
	r.LoadedListing(12, "/dst")

	assert.Equal(t,
		"Loaded 2 search terms from terms.txt\n"+
			"Loaded target file target.log (1,234 characters)\n"+
			"Comparing against 12 files from /dst\n",
		buf.String())
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, false).YAML(sampleReport()))

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run-1", decoded["run_id"])
	assert.Equal(t, "file", decoded["mode"])
	assert.Equal(t, 2, decoded["missing_count"])
	assert.Equal(t, []interface{}{"y.log", "z.log"}, decoded["missing"])
}

func TestWarning(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, false).Warning(Warning{
		Title:      "Cannot list directory",
		Message:    "path is not a directory: /tmp/x",
		Items:      []string{"a", "b"},
		Suggestion: "Enter an existing directory",
	})

	out := buf.String()
	assert.Contains(t, out, "Warning: Cannot list directory\n")
	assert.Contains(t, out, "    path is not a directory: /tmp/x\n")
	assert.Contains(t, out, "    Affected entries:\n      1. a\n      2. b\n")
	assert.Contains(t, out, "    Suggestion: Enter an existing directory\n")
}

func TestSelectionWarnings(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, false).SelectionWarnings([]string{"first", "second"})

	assert.Equal(t, 2, strings.Count(buf.String(), "Warning: Selection clause\n"))
}

func TestCountMismatch(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, false).CountMismatch(errors.New("count mismatch: 1 found + 0 missing != 2 search terms"), []string{"x.log"})

	out := buf.String()
	assert.Contains(t, out, "Warning: Count mismatch")
	assert.Contains(t, out, "1 duplicated search terms:")
	assert.Contains(t, out, "1. x.log")
}
