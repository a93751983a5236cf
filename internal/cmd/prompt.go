package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/harrison/missfind/internal/display"
)

var (
	errCancelled   = errors.New("selection cancelled")
	errInputClosed = errors.New("input closed before the session finished")
)

// MenuReader defines interface for reading user input (for testing)
type MenuReader interface {
	ReadString(delim byte) (string, error)
}

// newMenuReader wraps r unless it already reads strings
func newMenuReader(r io.Reader) MenuReader {
	if mr, ok := r.(MenuReader); ok {
		return mr
	}
	return bufio.NewReader(r)
}

// prompter asks questions on a renderer and reads answers from a MenuReader
type prompter struct {
	reader MenuReader
	out    *display.Renderer
}

// ask prints prompt and returns the trimmed answer.
// "q" or "quit" cancels the session.
func (p *prompter) ask(prompt string) (string, error) {
	p.out.Prompt(prompt)

	input, err := p.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if input == "" {
			p.out.Println()
			return "", errInputClosed
		}
	}

	input = strings.TrimSpace(input)
	switch strings.ToLower(input) {
	case "q", "quit":
		return "", errCancelled
	}
	return input, nil
}

// confirm asks a yes/no question; a blank answer picks def
func (p *prompter) confirm(question string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}

	for {
		answer, err := p.ask(fmt.Sprintf("%s %s: ", question, hint))
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		p.out.Error("Please answer y or n.")
	}
}
