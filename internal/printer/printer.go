// Package printer writes colored, human-oriented CLI output.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Printer writes to one destination with an optional color palette.
type Printer struct {
	out    io.Writer
	green  *color.Color
	yellow *color.Color
	red    *color.Color
	cyan   *color.Color
	faint  *color.Color
}

// New returns a Printer writing to out. Colors are forced on or off
// regardless of whether out is a terminal.
func New(out io.Writer, colored bool) *Printer {
	p := &Printer{
		out:    out,
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed, color.Bold),
		cyan:   color.New(color.FgCyan),
		faint:  color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.green, p.yellow, p.red, p.cyan, p.faint} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// Success prints a green message with a checkmark prefix.
func (p *Printer) Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		msg = "✓ " + msg
	}
	_, _ = p.green.Fprintln(p.out, msg)
}

// Info prints an uncolored line.
func (p *Printer) Info(format string, a ...any) {
	_, _ = fmt.Fprintf(p.out, format+"\n", a...)
}

// Warning prints a yellow message with a warning prefix.
func (p *Printer) Warning(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "⚠️") {
		msg = "⚠️  " + msg
	}
	_, _ = p.yellow.Fprintln(p.out, msg)
}

// Error prints a bold red title followed by an explanation.
func (p *Printer) Error(title, explanation string) {
	_, _ = p.red.Fprintln(p.out, title)
	if explanation != "" {
		_, _ = fmt.Fprintf(p.out, "\n%s\n", explanation)
	}
}

// Header prints a cyan section title.
func (p *Printer) Header(title string) {
	_, _ = p.cyan.Fprintln(p.out, title)
}

// Field prints an aligned "key: value" line with a faint key.
func (p *Printer) Field(key string, value any) {
	_, _ = p.faint.Fprintf(p.out, "  %-12s", key+":")
	_, _ = fmt.Fprintf(p.out, " %v\n", value)
}
