package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"abacus/internal/diag"
	"abacus/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	markerColor  = color.New(color.FgHiRed)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	start, end := fs.Resolve(d.Primary)
	f := fs.Get(d.Primary.File)
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		f.Path, start.Line, start.Col,
		severityLabel(d.Severity, opts.Color), d.Code.ID(), d.Message)
	prettyContext(w, f, start, end, opts)
	if !opts.ShowNotes {
		return
	}
	for _, note := range d.Notes {
		nf := fs.Get(note.Span.File)
		ns, _ := fs.Resolve(note.Span)
		fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", nf.Path, ns.Line, ns.Col, note.Msg)
	}
}

// prettyContext prints opts.Context lines before the primary line, then the
// primary line with a caret marker under the span.
func prettyContext(w io.Writer, f *source.File, start, end source.LineCol, opts PrettyOpts) {
	first := start.Line
	if opts.Context > 0 {
		ctx := uint32(opts.Context) //nolint:gosec // G115: checked positive.
		if ctx >= first {
			first = 1
		} else {
			first -= ctx
		}
	}
	for ln := first; ln <= start.Line; ln++ {
		fmt.Fprintf(w, "%5d | %s\n", ln, f.GetLine(ln))
	}

	width := uint32(1)
	if end.Line == start.Line && end.Col > start.Col {
		width = end.Col - start.Col
	}
	marker := "^"
	if width > 1 {
		marker += strings.Repeat("~", int(width-1))
	}
	if opts.Color {
		marker = markerColor.Sprint(marker)
	}
	fmt.Fprintf(w, "%5s | %s%s\n", "", strings.Repeat(" ", int(start.Col-1)), marker)
}

func severityLabel(sev diag.Severity, colored bool) string {
	label := sev.String()
	if !colored {
		return label
	}
	switch sev {
	case diag.SevError:
		return errorColor.Sprint(label)
	case diag.SevWarning:
		return warningColor.Sprint(label)
	default:
		return infoColor.Sprint(label)
	}
}
