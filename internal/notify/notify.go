// Package notify prints user-facing status lines for provisioning actions.
package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	stepColor    = color.New(color.FgCyan)
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	warnColor    = color.New(color.FgYellow)
)

// Printer writes styled status lines to a single destination.
type Printer struct {
	out io.Writer
}

// New returns a Printer writing to out. A nil out defaults to stdout.
func New(out io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	return &Printer{out: out}
}

// Stepf announces a provisioning step about to run.
func (p *Printer) Stepf(format string, args ...any) {
	stepColor.Fprintf(p.out, "► "+format+"\n", args...)
}

// Successf reports a completed action.
func (p *Printer) Successf(format string, args ...any) {
	successColor.Fprintf(p.out, "✓ "+format+"\n", args...)
}

// Errorf reports a failed step or action.
func (p *Printer) Errorf(format string, args ...any) {
	errorColor.Fprintf(p.out, "✗ "+format+"\n", args...)
}

// Warnf reports a non-fatal condition.
func (p *Printer) Warnf(format string, args ...any) {
	warnColor.Fprintf(p.out, "⚠ "+format+"\n", args...)
}

// Printf writes an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}
