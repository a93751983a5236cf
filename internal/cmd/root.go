package cmd

import (
	"errors"
	"fmt"

	"github.com/harrison/missfind/internal/config"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// maxPositionalArgs is terms file, target file and the found toggle
const maxPositionalArgs = 3

const usageLine = "missfind <search_terms_file> <target_file> [show_found]"

// UsageError reports an invalid number of positional arguments
type UsageError struct {
	Count int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("expected at most %d positional arguments, got %d\nUsage: %s",
		maxPositionalArgs, e.Count, usageLine)
}

// NewRootCommand creates and returns the root cobra command for missfind
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "missfind [search_terms_file target_file [show_found]]",
		Short: "Find search terms missing from a log, listing or directory",
		Long: `missfind checks whether each search term (usually a file path) appears
in a larger body of text, or whether files selected from one directory are
present in another.

File mode (two or three arguments):
  Every non-blank line of the terms file is searched for in the target file,
  case-insensitively and literally. A term whose full path is absent still
  counts as found when its basename appears. Missing terms are listed unless
  the third argument is one of the found words (true, yes, y, 1, found, show).

Interactive mode (fewer than two arguments):
  Prompts for a source directory and a selection of its files, then for a
  destination directory, and reports which selected names are absent from
  the destination listing. A single argument acts as the found toggle.

Selection expressions are ';'-separated clauses: a filename, a 1-based
index, or an inclusive filename range such as a.txt-d.txt. A clause
containing '-' is always read as a range, so pick filenames that contain
'-' by their index.

Examples:
  missfind terms.txt processing.log
  missfind terms.txt processing.log found
  missfind --format yaml terms.txt processing.log
  missfind --debug`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > maxPositionalArgs {
				return &UsageError{Count: len(args)}
			}
			return nil
		},
		RunE: runRoot,
	}

	cmd.Flags().Bool("debug", false, "Show verbose listings and selection tracing in interactive mode")
	cmd.Flags().String("config", "", "Path to config file (default: ./"+config.ConfigFileName+")")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	cmd.Flags().Bool("lock", false, "Hold a shared lock on the target file while reading it")
	cmd.Flags().String("format", "", "Report format: text or yaml (default: from config, text)")

	return cmd
}

// runRoot dispatches to file mode or interactive mode
func runRoot(cmd *cobra.Command, args []string) error {
	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}

	if len(args) >= 2 {
		opts := fileModeOptions{
			TermsPath:  args[0],
			TargetPath: args[1],
		}
		if len(args) == maxPositionalArgs {
			opts.ShowFound = env.cfg.IsFoundWord(args[2])
		}
		return runFileMode(cmd.Context(), env, opts)
	}

	sess := newSession(env)
	if len(args) == 1 {
		sess.setShowFound(env.cfg.IsFoundWord(args[0]))
	}

	err = sess.run(cmd.Context())
	if errors.Is(err, errCancelled) {
		env.status.Println("Cancelled.")
		return nil
	}
	return err
}
