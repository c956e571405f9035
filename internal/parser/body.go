package parser

import (
	"strings"

	"hufflint/internal/ast"
	"hufflint/internal/diag"
	"hufflint/internal/source"
	"hufflint/internal/token"
)

// parseBody consumes tokens through the matching '}' and splits them into
// CodeLines. Line structure is purely physical: the dialect has no statement
// terminators, one source line is one instruction group.
func (p *parser) parseBody(decl *ast.Decl, lbrace token.Token) (*ast.Scope, source.Span, error) {
	scope := &ast.Scope{Owner: decl}
	var lineToks []token.Token
	depth := 1

	flush := func() {
		if len(lineToks) == 0 {
			return
		}
		scope.Lines = append(scope.Lines, p.buildCodeLine(lineToks))
		lineToks = nil
	}

	for {
		tok := p.peek()
		switch tok.Kind {
		case token.EOF:
			return nil, source.Span{}, p.fatal(diag.SynMismatchedBraces, lbrace.Span,
				"macro body is never closed")

		case token.Newline:
			p.next()
			flush()

		case token.LBrace:
			depth++
			lineToks = append(lineToks, p.next())

		case token.RBrace:
			depth--
			rbrace := p.next()
			if depth == 0 {
				flush()
				return scope, rbrace.Span, nil
			}
			lineToks = append(lineToks, rbrace)

		default:
			lineToks = append(lineToks, p.next())
		}
	}
}

func (p *parser) buildCodeLine(toks []token.Token) *ast.CodeLine {
	line := &ast.CodeLine{}

	// хвостовой комментарий отделяем от кода
	code := toks
	if last := toks[len(toks)-1]; last.Kind == token.LineComment {
		code = toks[:len(toks)-1]
		start, _ := p.fs.Resolve(last.Span)
		line.Comment = classifyComment(last, start.Col-1)
	}

	line.Tokens = code
	if len(code) > 0 {
		line.Span = code[0].Span.Cover(code[len(code)-1].Span)
		start, _ := p.fs.Resolve(code[0].Span)
		line.LineNum = start.Line
	} else if line.Comment != nil {
		line.Span = line.Comment.Tok.Span
		start, _ := p.fs.Resolve(line.Span)
		line.LineNum = start.Line
	}

	if len(code) > 0 && code[0].Kind == token.LabelDecl {
		line.LabelDef = strings.TrimSuffix(code[0].Text, ":")
	}

	line.LabelRefs = collectLabelRefs(code)
	return line
}

// collectLabelRefs finds bare identifiers pushed as jump destinations.
// Constant references ([X]), template references (<x>) and macro
// invocations (X(...)) are not labels.
func collectLabelRefs(code []token.Token) []ast.LabelRef {
	var refs []ast.LabelRef
	for i, tok := range code {
		if tok.Kind != token.Ident {
			continue
		}
		if i > 0 {
			switch code[i-1].Kind {
			case token.LBracket, token.Lt:
				continue
			}
		}
		if i+1 < len(code) && code[i+1].Kind == token.LParen {
			continue
		}
		refs = append(refs, ast.LabelRef{Name: tok.Text, Span: tok.Span})
	}
	return refs
}

// classifyComment разбирает хвостовой комментарий строки.
// '// [a, b]' — стековый комментарий; '// takes: [a, b]' — маркер входа.
func classifyComment(tok token.Token, col uint32) *ast.StackComment {
	sc := &ast.StackComment{Tok: tok, Col: col}
	body := strings.TrimSpace(strings.TrimPrefix(tok.Text, "//"))
	if rest, ok := strings.CutPrefix(body, "takes:"); ok {
		sc.IsTakes = true
		body = strings.TrimSpace(rest)
	}
	if strings.HasPrefix(body, "[") && strings.HasSuffix(body, "]") {
		sc.IsStackEffect = true
	}
	return sc
}
