package rules

import (
	"fmt"
	"regexp"
	"strings"

	"hufflint/internal/ast"
	"hufflint/internal/diag"
)

// fileDoc enforces the one-file-doc rule: exactly one H1-opening doc
// block per file.
type fileDoc struct{}

func (fileDoc) Rule() diag.Code { return diag.StyFileDoc }

func (fileDoc) Check(ctx *Context, r diag.Reporter) {
	docs := ctx.File.FileDocs
	if len(docs) < 2 {
		return
	}
	for _, extra := range docs[1:] {
		b := diag.ReportWarning(r, diag.StyFileDoc, extra.Span,
			"duplicate file documentation block; a file has exactly one H1 title")
		b.WithNote(docs[0].Span, "first file documentation block is here")
		b.Emit()
	}
}

// docStructure validates heading levels, blank lines around headings and
// the list style of the known subsections.
type docStructure struct{}

func (docStructure) Rule() diag.Code { return diag.StyDocStructure }

var orderedItem = regexp.MustCompile(`^\d+\.\s`)

func (docStructure) Check(ctx *Context, r diag.Reporter) {
	for _, block := range ctx.File.FileDocs {
		checkBlock(block, 1, r)
	}
	for _, decl := range ctx.File.Decls {
		if decl.Doc == nil {
			continue
		}
		checkBlock(decl.Doc, 2, r)
	}
}

func checkBlock(block *ast.DocBlock, titleLevel int, r diag.Reporter) {
	sawTitle := false
	for i, tok := range block.Lines {
		level := ast.HeadingLevel(tok)
		if level == 0 {
			continue
		}

		if !sawTitle {
			sawTitle = true
			if i != 0 {
				diag.ReportWarning(r, diag.StyDocStructure, tok.Span,
					"documentation block must open with its title heading").
					Emit()
			}
			if level != titleLevel {
				diag.ReportWarning(r, diag.StyDocStructure, tok.Span,
					fmt.Sprintf("title heading level is H%d, expected H%d", level, titleLevel)).
					Emit()
			}
			continue
		}

		if level <= titleLevel {
			diag.ReportWarning(r, diag.StyDocStructure, tok.Span,
				fmt.Sprintf("H%d heading inside a block titled at H%d", level, titleLevel)).
				Emit()
		}
		if i > 0 && strings.TrimSpace(ast.DocLineBody(block.Lines[i-1])) != "" {
			diag.ReportWarning(r, diag.StyDocStructure, tok.Span,
				"heading must be preceded by a blank documentation line").
				Emit()
		}
	}

	for _, sec := range block.Sections() {
		checkSectionListStyle(sec, r)
	}
}

// checkSectionListStyle enforces the per-section list convention:
// Directives and Template Arguments are ordered lists, Panics is
// unordered.
func checkSectionListStyle(sec ast.DocSection, r diag.Reporter) {
	var wantOrdered bool
	switch sec.Heading {
	case ast.SectionDirectives, ast.SectionTemplateArgs:
		wantOrdered = true
	case ast.SectionPanics:
		wantOrdered = false
	default:
		return
	}

	for _, tok := range sec.Body {
		body := strings.TrimSpace(ast.DocLineBody(tok))
		isOrdered := orderedItem.MatchString(body)
		isUnordered := strings.HasPrefix(body, "- ") || strings.HasPrefix(body, "* ")
		if !isOrdered && !isUnordered {
			continue
		}
		if wantOrdered && !isOrdered {
			diag.ReportWarning(r, diag.StyDocStructure, tok.Span,
				fmt.Sprintf("%s items use an ordered list", sec.Heading)).
				Emit()
		}
		if !wantOrdered && isOrdered {
			diag.ReportWarning(r, diag.StyDocStructure, tok.Span,
				fmt.Sprintf("%s items use an unordered list", sec.Heading)).
				Emit()
		}
	}
}
