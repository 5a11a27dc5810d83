package diagnostic

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorMode selects when the Printer emits ANSI colors.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a --color flag value.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("invalid color mode %q: want auto, always or never", s)
	}
}

// Printer writes diagnostics to a stream, one per line.
type Printer struct {
	w io.Writer

	severity map[Severity]*color.Color
	code     *color.Color
	pos      *color.Color
}

// NewPrinter creates a Printer for w. In ColorAuto mode colors are enabled
// only when w is a terminal.
func NewPrinter(w io.Writer, mode ColorMode) *Printer {
	p := &Printer{
		w: w,
		severity: map[Severity]*color.Color{
			SeverityError:   color.New(color.FgRed, color.Bold),
			SeverityWarning: color.New(color.FgYellow, color.Bold),
			SeverityInfo:    color.New(color.FgCyan),
		},
		code: color.New(color.Faint),
		pos:  color.New(color.Bold),
	}

	enabled := mode == ColorAlways || (mode == ColorAuto && isTerminal(w))
	for _, c := range p.all() {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

func (p *Printer) all() []*color.Color {
	return []*color.Color{
		p.severity[SeverityError],
		p.severity[SeverityWarning],
		p.severity[SeverityInfo],
		p.code,
		p.pos,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Print writes a single diagnostic.
func (p *Printer) Print(d Diagnostic) {
	line := ""
	if d.Position.IsValid() {
		line = p.pos.Sprint(d.Position.String()) + ": "
	}

	line += p.severity[d.Severity].Sprint(d.Severity.String()) + ": " + d.Message
	if d.Code != "" {
		line += " " + p.code.Sprintf("[%s]", d.Code)
	}

	fmt.Fprintln(p.w, line)
}

// PrintAll writes errors, then warnings, then infos.
func (p *Printer) PrintAll(d Diagnostics) {
	for _, list := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range list {
			p.Print(diag)
		}
	}
}
