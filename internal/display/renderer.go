package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Renderer writes formatted console output
type Renderer struct {
	out   io.Writer
	color bool

	// Width is the terminal width used by compact listings
	Width int
}

// defaultWidth is used when the terminal width is unknown
const defaultWidth = 80

// NewRenderer creates a Renderer writing to out
func NewRenderer(out io.Writer, colorOutput bool) *Renderer {
	return &Renderer{out: out, color: colorOutput, Width: defaultWidth}
}

// Println writes a line without decoration
func (r *Renderer) Println(args ...interface{}) {
	fmt.Fprintln(r.out, args...)
}

// paint applies attrs to s when color output is on
func (r *Renderer) paint(s string, attrs ...color.Attribute) string {
	if !r.color {
		return s
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}

// Prompt writes a prompt without a trailing newline
func (r *Renderer) Prompt(text string) {
	fmt.Fprint(r.out, r.paint(text, color.FgCyan))
}

// Error writes an error line in red
func (r *Renderer) Error(text string) {
	fmt.Fprintln(r.out, r.paint(text, color.FgRed))
}

// groupDigits formats n with thousands separators
func groupDigits(n int) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}
