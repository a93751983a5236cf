package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/harrison/missfind/internal/display"
	"github.com/harrison/missfind/internal/fileutil"
	"github.com/harrison/missfind/internal/matcher"
	"github.com/harrison/missfind/internal/models"
	"github.com/harrison/missfind/internal/selection"
	"github.com/mattn/go-isatty"
)

// sessionState is one step of the interactive comparison
type sessionState int

const (
	stateChooseSource sessionState = iota
	stateSourceDir
	stateSourceSelect
	stateDestDir
	stateTermsFromDest
	stateDestSelect
	stateChooseListing
	stateCompare
	stateDone
)

// session holds the values threaded between interactive steps
type session struct {
	env    *environment
	prompt *prompter

	useSource   bool
	sourceDir   string
	sourceFiles []string
	terms       []string

	destDir   string
	destFiles []string
	haystack  []string

	showFound    bool
	showFoundSet bool
}

func newSession(env *environment) *session {
	return &session{
		env:    env,
		prompt: &prompter{reader: env.input, out: env.status},
	}
}

// setShowFound fixes the listed side so the session does not ask for it
func (s *session) setShowFound(showFound bool) {
	s.showFound = showFound
	s.showFoundSet = true
}

// run drives the session until the comparison is printed
func (s *session) run(ctx context.Context) error {
	if s.env.debug {
		s.env.log.SetLevel("debug")
	}
	if f, ok := s.env.stdin.(*os.File); ok && !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		s.env.log.LogDebug("stdin is not a terminal, reading answers from piped input")
	}

	state := stateChooseSource
	for state != stateDone {
		if err := ctx.Err(); err != nil {
			return err
		}

		next, err := s.step(state)
		if err != nil {
			return err
		}
		s.env.log.Debugf("interactive step %d -> %d", state, next)
		state = next
	}
	return nil
}

func (s *session) step(state sessionState) (sessionState, error) {
	switch state {
	case stateChooseSource:
		useSource, err := s.prompt.confirm("Pick search terms from a source directory?", true)
		if err != nil {
			return state, err
		}
		s.useSource = useSource
		if useSource {
			return stateSourceDir, nil
		}
		return stateDestDir, nil

	case stateSourceDir:
		dir, files, err := s.chooseDirectory("Source directory: ", "Source files")
		if err != nil {
			return state, err
		}
		s.sourceDir, s.sourceFiles = dir, files
		return stateSourceSelect, nil

	case stateSourceSelect:
		terms, err := s.chooseSelection(s.sourceFiles, "source", true, true)
		if err != nil {
			return state, err
		}
		s.terms = terms
		s.env.status.LoadedTerms(len(terms), s.sourceDir)
		return stateDestDir, nil

	case stateDestDir:
		dir, files, err := s.chooseDirectory("Destination directory: ", "Destination files")
		if err != nil {
			return state, err
		}
		s.destDir, s.destFiles = dir, files
		if s.useSource {
			return stateDestSelect, nil
		}
		return stateTermsFromDest, nil

	case stateTermsFromDest:
		s.env.status.Println("Select the names to look for. Names not in the listing are kept as expected files.")
		terms, err := s.chooseSelection(s.destFiles, "search", true, false)
		if err != nil {
			return state, err
		}
		s.terms = terms
		s.env.status.LoadedTerms(len(terms), s.destDir)
		return stateDestSelect, nil

	case stateDestSelect:
		haystack, err := s.chooseSelection(s.destFiles, "destination", false, true)
		if err != nil {
			return state, err
		}
		s.haystack = haystack
		s.env.status.LoadedListing(len(haystack), s.destDir)
		return stateChooseListing, nil

	case stateChooseListing:
		if !s.showFoundSet {
			showFound, err := s.prompt.confirm("List found terms instead of missing ones?", false)
			if err != nil {
				return state, err
			}
			s.setShowFound(showFound)
		}
		return stateCompare, nil

	case stateCompare:
		result := matcher.Partition(s.terms, matcher.NewList(s.haystack))
		termsSource := s.sourceDir
		if !s.useSource {
			termsSource = s.destDir
		}
		if err := s.env.finish(models.ModeInteractive, termsSource, s.destDir, s.terms, result, s.showFound); err != nil {
			return state, err
		}
		return stateDone, nil
	}

	return stateDone, fmt.Errorf("unknown interactive state %d", state)
}

// chooseDirectory prompts until a listable directory is entered
func (s *session) chooseDirectory(question, title string) (string, []string, error) {
	for {
		dir, err := s.prompt.ask(question)
		if err != nil {
			return "", nil, err
		}
		if dir == "" {
			s.env.status.Error("Please enter a directory path.")
			continue
		}

		files, err := fileutil.ListFiles(dir)
		if err != nil {
			s.env.status.Warning(display.Warning{
				Title:      "Cannot list directory",
				Message:    err.Error(),
				Suggestion: "Enter an existing directory path, or q to quit",
			})
			continue
		}

		s.env.log.Debugf("listed %d files in %s", len(files), dir)
		s.env.status.Listing(fmt.Sprintf("%s in %s", title, dir), files, s.env.debug)
		return dir, files, nil
	}
}

// chooseSelection returns either the whole listing (when offered and
// accepted) or the names picked by a selection expression. Empty
// selections are rejected and the expression is asked again.
func (s *session) chooseSelection(files []string, side string, allowUnknown, offerAll bool) ([]string, error) {
	if offerAll && len(files) > 0 {
		all, err := s.prompt.confirm(fmt.Sprintf("Use all %d %s files?", len(files), side), true)
		if err != nil {
			return nil, err
		}
		if all {
			return append([]string(nil), files...), nil
		}
	}

	question := fmt.Sprintf("Select %s files (names, numbers or name-name ranges, separated by ';'): ", side)
	for {
		expression, err := s.prompt.ask(question)
		if err != nil {
			return nil, err
		}

		names, sel := selection.Resolve(expression, files, allowUnknown)
		s.env.log.Debugf("selection %q: %d indices, %d extra names, %d warnings",
			expression, len(sel.Indices), len(sel.Extras), len(sel.Warnings))
		s.env.status.SelectionWarnings(sel.Warnings)

		if len(names) == 0 {
			s.env.status.Error("No files selected, try again.")
			continue
		}

		if s.env.debug {
			s.env.status.Selected(fmt.Sprintf("Selected %s files", side), names)
		}
		return names, nil
	}
}
