package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/harrison/missfind/internal/config"
	"github.com/harrison/missfind/internal/display"
	"github.com/harrison/missfind/internal/logger"
	"github.com/harrison/missfind/internal/models"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// environment carries the per-invocation collaborators shared by both modes
type environment struct {
	cfg    *config.Config
	out    *display.Renderer // report and prompts
	status *display.Renderer // load lines and warnings
	log    *logger.ConsoleLogger
	input  MenuReader
	stdin  io.Reader
	debug  bool
}

// newEnvironment loads configuration and wires output for cmd
func newEnvironment(cmd *cobra.Command) (*environment, error) {
	configPath, _ := cmd.Flags().GetString("config")
	var cfg *config.Config
	var err error

	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.LoadConfigFromDir(".")
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	var colorPtr *string
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		never := config.ColorNever
		colorPtr = &never
	}
	var lockPtr *bool
	if cmd.Flags().Changed("lock") {
		lock, _ := cmd.Flags().GetBool("lock")
		lockPtr = &lock
	}
	var formatPtr *string
	if cmd.Flags().Changed("format") {
		format, _ := cmd.Flags().GetString("format")
		formatPtr = &format
	}

	cfg.MergeWithFlags(colorPtr, lockPtr, formatPtr)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	debug, _ := cmd.Flags().GetBool("debug")
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	out := display.NewRenderer(stdout, colorEnabled(cfg.Color, stdout))
	status := out
	if cfg.Format == config.FormatYAML {
		// Keep stdout a clean YAML document
		status = display.NewRenderer(stderr, colorEnabled(cfg.Color, stderr))
	}

	if width := terminalWidth(stdout); width > 0 {
		out.Width = width
	}
	if width := terminalWidth(stderr); width > 0 && status != out {
		status.Width = width
	}

	log := logger.NewConsoleLogger(stderr, cfg.LogLevel)
	log.SetColor(colorEnabled(cfg.Color, stderr))

	stdin := cmd.InOrStdin()

	return &environment{
		cfg:    cfg,
		out:    out,
		status: status,
		log:    log,
		input:  newMenuReader(stdin),
		stdin:  stdin,
		debug:  debug,
	}, nil
}

// colorEnabled resolves a color mode against the destination writer
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return !color.NoColor && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// terminalWidth reports the column count of w, or 0 when w is not a terminal
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

// finish checks the partition, then renders it in the configured format
func (e *environment) finish(mode, termsSource, haystackSource string, terms []string, result models.ComparisonResult, showFound bool) error {
	if err := result.Check(len(terms)); err != nil {
		e.status.CountMismatch(err, models.DuplicateTerms(terms))
	}

	report := models.Report{
		RunID:          uuid.New().String(),
		Mode:           mode,
		TermsSource:    termsSource,
		HaystackSource: haystackSource,
		GeneratedAt:    time.Now().UTC(),
		Total:          len(terms),
		FoundCount:     len(result.Found),
		MissingCount:   len(result.Missing),
		Found:          result.Found,
		Missing:        result.Missing,
	}

	e.log.Debugf("run %s: %d found, %d missing of %d terms", report.RunID, report.FoundCount, report.MissingCount, report.Total)

	if e.cfg.Format == config.FormatYAML {
		return e.out.YAML(report)
	}
	e.out.Report(report, showFound)
	return nil
}
