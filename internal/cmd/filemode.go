package cmd

import (
	"context"
	"fmt"

	"github.com/harrison/missfind/internal/fileutil"
	"github.com/harrison/missfind/internal/filelock"
	"github.com/harrison/missfind/internal/matcher"
	"github.com/harrison/missfind/internal/models"
)

// fileModeOptions selects the inputs of a terms-file vs. text-file run
type fileModeOptions struct {
	TermsPath  string
	TargetPath string
	ShowFound  bool
}

// runFileMode searches every term of the terms file in the target text.
// Any read failure aborts before matching starts.
func runFileMode(ctx context.Context, env *environment, opts fileModeOptions) error {
	terms, err := fileutil.ReadTerms(opts.TermsPath)
	if err != nil {
		return fmt.Errorf("failed to load search terms from %s: %w", opts.TermsPath, err)
	}
	env.status.LoadedTerms(len(terms), opts.TermsPath)

	content, err := readTarget(ctx, env, opts.TargetPath)
	if err != nil {
		return fmt.Errorf("failed to load target file %s: %w", opts.TargetPath, err)
	}
	env.status.LoadedText(opts.TargetPath, content)

	result := matcher.Partition(terms, matcher.NewText(content))

	return env.finish(models.ModeFile, opts.TermsPath, opts.TargetPath, terms, result, opts.ShowFound)
}

// readTarget reads the target file, under a shared lock when configured
func readTarget(ctx context.Context, env *environment, path string) (string, error) {
	if !env.cfg.LockTarget {
		return fileutil.ReadText(path)
	}

	var content string
	err := filelock.WithReadLock(ctx, path, env.cfg.LockTimeout, func() error {
		env.log.LogDebug(fmt.Sprintf("holding shared lock on %s", path))
		var readErr error
		content, readErr = fileutil.ReadText(path)
		return readErr
	})
	return content, err
}
