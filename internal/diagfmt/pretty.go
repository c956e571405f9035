package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"hufflint/internal/diag"
	"hufflint/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs, opts)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	writeHeading(w, fs, d.Primary, severityColor(d.Severity), d.Severity.String(), d.Code.ID(), d.Message, opts)
	writeUnderline(w, fs, d.Primary, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			writeHeading(w, fs, note.Span, color.FgCyan, "NOTE", "", note.Msg, opts)
			writeUnderline(w, fs, note.Span, opts)
		}
	}
	if opts.ShowFixes {
		for _, fix := range d.Fixes {
			fmt.Fprintf(w, "  fix: %s (%d edits)\n", fix.Title, len(fix.Edits))
		}
	}
}

func writeHeading(w io.Writer, fs *source.FileSet, span source.Span, attr color.Attribute, sev, code, msg string, opts PrettyOpts) {
	file := fs.Get(span.File)
	start, _ := fs.Resolve(span)

	label := sev
	if code != "" {
		label = sev + " " + code
	}
	if opts.Color {
		label = color.New(attr, color.Bold).Sprint(label)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", file.Name, start.Line, start.Col, label, msg)
}

// writeUnderline prints the source line with a ^~~~ marker under the span.
func writeUnderline(w io.Writer, fs *source.FileSet, span source.Span, opts PrettyOpts) {
	file := fs.Get(span.File)
	start, end := fs.Resolve(span)

	line := strings.TrimRight(file.GetLine(start.Line), "\n")
	if line == "" && span.Empty() {
		return
	}
	fmt.Fprintf(w, "  %s\n", strings.ReplaceAll(line, "\t", " "))

	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		width = int(end.Col - start.Col)
	} else if end.Line > start.Line {
		width = len(line) - int(start.Col) + 1
	}
	if width < 1 {
		width = 1
	}
	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = color.New(color.FgGreen, color.Bold).Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", int(start.Col)-1), marker)
}

func severityColor(sev diag.Severity) color.Attribute {
	switch sev {
	case diag.SevFatal, diag.SevError:
		return color.FgRed
	case diag.SevWarning:
		return color.FgYellow
	default:
		return color.FgCyan
	}
}
