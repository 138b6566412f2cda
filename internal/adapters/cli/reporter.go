// Package cli contains the console-facing adapters.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/example/epidata/internal/ports/secondary"
)

// ConsoleReporter implements secondary.Reporter by writing lines to out.
type ConsoleReporter struct {
	out io.Writer
}

// NewConsoleReporter creates a reporter writing to out.
func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: out}
}

// Infof writes a plain progress line.
func (r *ConsoleReporter) Infof(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Successf writes a line marked with a green check.
func (r *ConsoleReporter) Successf(format string, args ...any) {
	fmt.Fprintf(r.out, "%s %s\n", color.New(color.FgGreen).Sprint("✓"), fmt.Sprintf(format, args...))
}

// Warnf writes an advisory line marked with a yellow bang.
func (r *ConsoleReporter) Warnf(format string, args ...any) {
	fmt.Fprintf(r.out, "%s %s\n", color.New(color.FgYellow).Sprint("!"), fmt.Sprintf(format, args...))
}

// Block writes text verbatim, cyan when color is enabled.
func (r *ConsoleReporter) Block(text string) {
	fmt.Fprintln(r.out, color.New(color.FgCyan).Sprint(strings.TrimRight(text, "\n")))
}

// Ensure ConsoleReporter implements the interface
var _ secondary.Reporter = (*ConsoleReporter)(nil)
