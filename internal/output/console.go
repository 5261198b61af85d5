// Package output delivers profiler results to the console and to
// machine-readable export formats.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Console writes run reports and status lines, colorizing only when the
// destination is a terminal. The report body bytes are never altered; only
// the header line is styled, so piped output stays byte-exact.
type Console struct {
	writer   io.Writer
	useColor bool
}

// NewConsole creates a console sink for w. Color is enabled only when w is
// a TTY and noColor is unset.
func NewConsole(w io.Writer, noColor bool) *Console {
	useColor := !noColor && isTerminal(w)
	return &Console{writer: w, useColor: useColor}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PrintReport writes the rendered report text.
func (c *Console) PrintReport(text string) {
	if !c.useColor {
		fmt.Fprint(c.writer, text)
		return
	}
	header, body, found := strings.Cut(text, "\n")
	if !found {
		fmt.Fprint(c.writer, text)
		return
	}
	color.New(color.Bold).Fprintln(c.writer, header)
	fmt.Fprint(c.writer, body)
}

// Headline writes a styled one-line status message.
func (c *Console) Headline(format string, args ...interface{}) {
	if c.useColor {
		color.New(color.FgCyan, color.Bold).Fprintf(c.writer, format+"\n", args...)
		return
	}
	fmt.Fprintf(c.writer, format+"\n", args...)
}

// Printf writes an unstyled message.
func (c *Console) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.writer, format, args...)
}
