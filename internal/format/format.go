// Package format rewrites a file by applying the suggested fixes its
// diagnostics carry. Only whitespace, comment position and template
// parameter wrapping are ever rewritten; the token stream is otherwise
// preserved.
package format

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"hufflint/internal/diag"
	"hufflint/internal/lexer"
	"hufflint/internal/source"
	"hufflint/internal/token"
)

// ErrOverlappingEdits signals two suggested fixes competing for the same
// bytes. This is a checker defect, not a user input error: format mode
// aborts for the file, lint mode is unaffected.
var ErrOverlappingEdits = errors.New("overlapping suggested fixes")

// ErrStaleEdit signals an edit whose guard text no longer matches the
// file content.
var ErrStaleEdit = errors.New("edit does not match file content")

// Result is the outcome of formatting one file.
type Result struct {
	Text    []byte
	Changed bool
	Applied int // number of edits applied
}

// File applies every fix edit attached to the file's diagnostics in a
// single pass over the original spans.
func File(src *source.File, diags []diag.Diagnostic) (Result, error) {
	edits := collectEdits(src.ID, diags)
	if len(edits) == 0 {
		return Result{Text: src.Content, Changed: false}, nil
	}

	sort.SliceStable(edits, func(i, j int) bool {
		if edits[i].Span.Start == edits[j].Span.Start {
			return edits[i].Span.End < edits[j].Span.End
		}
		return edits[i].Span.Start < edits[j].Span.Start
	})

	for i := 1; i < len(edits); i++ {
		if edits[i-1].Span.Overlaps(edits[i].Span) {
			return Result{}, fmt.Errorf("%w: [%s] and [%s]: %s",
				ErrOverlappingEdits, edits[i-1].Span, edits[i].Span, diag.FmtOverlappingFixes.Title())
		}
	}

	// Apply back to front so earlier offsets stay valid.
	out := append([]byte(nil), src.Content...)
	for i := len(edits) - 1; i >= 0; i-- {
		e := edits[i]
		start, end := int(e.Span.Start), int(e.Span.End)
		if start < 0 || end < start || end > len(out) {
			return Result{}, fmt.Errorf("%w: span [%s] out of range", ErrStaleEdit, e.Span)
		}
		if e.OldText != "" && string(out[start:end]) != e.OldText {
			return Result{}, fmt.Errorf("%w: span [%s]", ErrStaleEdit, e.Span)
		}
		out = append(out[:start], append([]byte(e.NewText), out[end:]...)...)
	}

	return Result{
		Text:    out,
		Changed: !bytes.Equal(out, src.Content),
		Applied: len(edits),
	}, nil
}

func collectEdits(fileID source.FileID, diags []diag.Diagnostic) []diag.TextEdit {
	var edits []diag.TextEdit
	for _, d := range diags {
		for _, fix := range d.Fixes {
			for _, e := range fix.Edits {
				if e.Span.File != fileID {
					continue
				}
				edits = append(edits, e)
			}
		}
	}
	return edits
}

// EquivalentTokens reports whether two sources carry the same token
// stream once line breaks and a trailing comma before a closing
// parenthesis are ignored. The trailing comma allowance covers the
// template-list rewrite, which puts one parameter per line with the
// trailing comma convention; everything a formatter pass may legally
// change is layout. It is the cheap self-check format callers run on
// the rewritten text.
func EquivalentTokens(a, b []byte) bool {
	return tokenKey(a) == tokenKey(b)
}

func tokenKey(content []byte) string {
	fs := source.NewFileSet()
	id := fs.AddVirtual("key", content)
	toks, err := lexer.Tokenize(fs.Get(id), lexer.Options{Reporter: diag.NopReporter{}})
	if err != nil {
		return ""
	}
	sig := toks[:0:0]
	for _, t := range toks {
		if t.Kind == token.Newline || t.Kind == token.EOF {
			continue
		}
		sig = append(sig, t)
	}
	var sb bytes.Buffer
	for i, t := range sig {
		if t.Kind == token.Comma && i+1 < len(sig) && sig[i+1].Kind == token.RParen {
			continue
		}
		sb.WriteString(t.Kind.String())
		sb.WriteByte(0)
		sb.WriteString(t.Text)
		sb.WriteByte(0)
	}
	return sb.String()
}
