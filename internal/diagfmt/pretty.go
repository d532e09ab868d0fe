package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"rawfix/internal/diag"
	"rawfix/internal/source"
)

// Pretty renders diagnostics in a human-readable form. It walks bag.Items()
// in order (callers usually bag.Sort() first) and prints for each one:
//
//	<path>:<line>:<col>: <SEV> <ID>: <message>
//	  <source line>
//	  <caret underline>
//
// followed by notes and fix titles when enabled.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := prettyPrinter{w: w, fs: fs, opts: opts}
	for _, d := range bag.Items() {
		p.diagnostic(d)
	}
}

type prettyPrinter struct {
	w    io.Writer
	fs   *source.FileSet
	opts PrettyOpts
}

func (p *prettyPrinter) diagnostic(d diag.Diagnostic) {
	p.header(d.Severity, d.Code, d.Message, d.Primary)
	p.context(d.Primary)

	if p.opts.ShowNotes {
		for _, n := range d.Notes {
			p.note(n)
		}
	}
	if p.opts.ShowFixes {
		for _, f := range d.Fixes {
			fmt.Fprintf(p.w, "  fix available: %s [%s]\n", f.Title, p.fixID(f))
		}
	}
}

func (p *prettyPrinter) header(sev diag.Severity, code diag.Code, msg string, sp source.Span) {
	file := p.fs.Get(sp.File)
	start, _ := p.fs.Resolve(sp)
	path := file.FormatPath(p.opts.PathMode.format(), p.fs.BaseDir())

	sevText := sev.String()
	if p.opts.Color {
		sevText = p.sevColor(sev).Sprint(sevText)
	}
	fmt.Fprintf(p.w, "%s:%d:%d: %s %s: %s\n", path, start.Line, start.Col, sevText, code.ID(), msg)
}

// context prints the first source line the span touches with a caret
// underline beneath the covered columns.
func (p *prettyPrinter) context(sp source.Span) {
	file := p.fs.Get(sp.File)
	start, end := p.fs.Resolve(sp)

	line := file.GetLine(start.Line)
	if line == "" && start.Col > 1 {
		return
	}
	fmt.Fprintf(p.w, "  %s\n", expandTabs(line))

	// Align the caret under the start column, accounting for wide runes.
	prefix := line
	if int(start.Col)-1 <= len(line) {
		prefix = line[:start.Col-1]
	}
	pad := strings.Repeat(" ", runewidth.StringWidth(expandTabs(prefix)))

	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		width = int(end.Col - start.Col)
	}
	marker := "^"
	if width > 1 {
		marker += strings.Repeat("~", width-1)
	}
	if p.opts.Color {
		marker = color.New(color.FgGreen, color.Bold).Sprint(marker)
	}
	fmt.Fprintf(p.w, "  %s%s\n", pad, marker)
}

func (p *prettyPrinter) note(n diag.Note) {
	file := p.fs.Get(n.Span.File)
	start, _ := p.fs.Resolve(n.Span)
	path := file.FormatPath(p.opts.PathMode.format(), p.fs.BaseDir())
	fmt.Fprintf(p.w, "  note: %s:%d:%d: %s\n", path, start.Line, start.Col, n.Msg)
}

func (p *prettyPrinter) fixID(f diag.Fix) string {
	if f.ID == "" {
		return "unnamed"
	}
	return f.ID
}

func (p *prettyPrinter) sevColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

// expandTabs keeps caret alignment stable for tab-indented lines.
func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
