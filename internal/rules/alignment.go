package rules

import (
	"strings"

	"hufflint/internal/align"
	"hufflint/internal/ast"
	"hufflint/internal/diag"
	"hufflint/internal/nest"
	"hufflint/internal/source"
)

// alignment compares every line's observed layout against the derived
// canonical layout and suggests the whitespace edits that repair it.
// The expected comment column is computed over the corrected
// indentation, not the indentation as written.
type alignment struct{}

func (alignment) Rule() diag.Code { return diag.StyAlignment }

func (a alignment) Check(ctx *Context, r diag.Reporter) {
	for _, decl := range ctx.File.Decls {
		if decl.Body == nil {
			continue
		}
		layout := ctx.layoutFor(decl)
		for i, line := range decl.Body.Lines {
			a.checkLine(ctx, line, layout, i, r)
		}
	}
}

// layoutFor returns the precomputed layout when the driver supplied one,
// recomputing otherwise so the checker stays usable standalone.
func (ctx *Context) layoutFor(decl *ast.Decl) align.Result {
	if layout, ok := ctx.Layout[decl]; ok {
		return layout
	}
	depths, ok := ctx.Nesting[decl]
	if !ok {
		depths = nest.Compute(decl.Body, diag.NopReporter{})
	}
	return align.Compute(ctx.Src, decl.Body, depths, ctx.Cfg.BaseIndentWidth)
}

func (alignment) checkLine(ctx *Context, line *ast.CodeLine, layout align.Result, i int, r diag.Reporter) {
	lineStart, ok := ctx.Src.LineStart(line.LineNum)
	if !ok {
		return
	}

	var firstTok source.Span
	if len(line.Tokens) > 0 {
		firstTok = line.Tokens[0].Span
	} else if line.Comment != nil {
		firstTok = line.Comment.Tok.Span
	} else {
		return
	}

	var edits []diag.TextEdit

	wantIndent := layout.IndentPrefix(i)
	gotIndent := string(ctx.Src.Content[lineStart:firstTok.Start])
	if gotIndent != wantIndent {
		edits = append(edits, diag.TextEdit{
			Span:    source.Span{File: ctx.Src.ID, Start: lineStart, End: firstTok.Start},
			NewText: wantIndent,
			OldText: gotIndent,
		})
	}

	if edit, ok := commentGapEdit(ctx, line, layout, i); ok {
		edits = append(edits, edit)
	}

	if len(edits) == 0 {
		return
	}
	diag.ReportWarning(r, diag.StyAlignment, line.Span,
		"line layout differs from the canonical indentation and comment column").
		WithFix("realign line", edits...).
		Emit()
}

// commentGapEdit repairs the gap between the last code token and a
// trailing stack comment so the comment lands on the scope column.
// Full-line comments sit at the indent and need no column.
func commentGapEdit(ctx *Context, line *ast.CodeLine, layout align.Result, i int) (diag.TextEdit, bool) {
	if line.Comment == nil || !line.Comment.IsStackEffect || len(line.Tokens) == 0 {
		return diag.TextEdit{}, false
	}
	if layout.CommentCol == align.NoCommentColumn {
		return diag.TextEdit{}, false
	}

	gap := layout.CommentCol - layout.Lines[i].Width
	if gap < 1 {
		gap = 1
	}
	codeEnd := line.Tokens[len(line.Tokens)-1].Span.End
	commentStart := line.Comment.Tok.Span.Start

	want := strings.Repeat(" ", gap)
	got := string(ctx.Src.Content[codeEnd:commentStart])
	if got == want && int(line.Comment.Col) == layout.CommentCol {
		return diag.TextEdit{}, false
	}
	if got == want {
		// Gap already canonical; the column is off only because the
		// indent is, and the indent edit fixes both.
		return diag.TextEdit{}, false
	}
	return diag.TextEdit{
		Span:    source.Span{File: ctx.Src.ID, Start: codeEnd, End: commentStart},
		NewText: want,
		OldText: got,
	}, true
}
