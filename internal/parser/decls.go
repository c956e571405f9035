package parser

import (
	"fmt"
	"strconv"
	"strings"

	"hufflint/internal/ast"
	"hufflint/internal/diag"
	"hufflint/internal/token"
)

func (p *parser) parseInclude() (*ast.Decl, error) {
	hash := p.next() // '#include'
	path, err := p.expect(token.StringLit, "include path string")
	if err != nil {
		return nil, err
	}
	return &ast.Decl{
		Kind:        ast.DeclInclude,
		Span:        hash.Span.Cover(path.Span),
		NameSpan:    path.Span,
		IncludePath: strings.Trim(path.Text, `"`),
	}, nil
}

func (p *parser) parseDefine() (*ast.Decl, error) {
	hash := p.next() // '#define'
	switch p.peek().Kind {
	case token.KwFunction:
		return p.parseAbiFunction(hash)
	case token.KwConstant:
		return p.parseConstant(hash)
	case token.KwMacro, token.KwFn:
		return p.parseMacro(hash)
	default:
		tok := p.peek()
		return nil, p.fatal(diag.SynUnexpectedToken, tok.Span,
			fmt.Sprintf("expected macro, fn, function or constant after #define, found %s", tok.Kind))
	}
}

func (p *parser) parseAbiFunction(hash token.Token) (*ast.Decl, error) {
	p.next() // 'function'
	name, err := p.expect(token.Ident, "function name")
	if err != nil {
		return nil, err
	}
	if err := p.registerName(name.Text, name.Span); err != nil {
		return nil, err
	}

	decl := &ast.Decl{
		Kind:     ast.DeclAbiFunction,
		Name:     name.Text,
		NameSpan: name.Span,
		Span:     hash.Span,
	}

	if _, err := p.expect(token.LParen, "'('"); err != nil {
		return nil, err
	}
	params, err := p.parseCommaIdents()
	if err != nil {
		return nil, err
	}
	decl.Params = params

	// mutability (view, pure, payable, nonpayable)
	if p.peek().Kind == token.Ident {
		decl.Mutability = p.next().Text
	}

	if p.peek().Kind == token.KwReturns {
		p.next()
		if _, err := p.expect(token.LParen, "'('"); err != nil {
			return nil, err
		}
		rets, err := p.parseCommaIdents()
		if err != nil {
			return nil, err
		}
		decl.Rets = rets
	}

	decl.Span = decl.Span.Cover(p.toks[p.pos-1].Span)
	return decl, nil
}

// parseCommaIdents reads 'ident (, ident)* )' tolerating a trailing comma
// and line breaks; consumes the closing paren.
func (p *parser) parseCommaIdents() ([]string, error) {
	var out []string
	for {
		tok := p.skipBreaks()
		switch tok.Kind {
		case token.RParen:
			p.next()
			return out, nil
		case token.Ident, token.Opcode:
			// типы вроде 'address' лексер мог посчитать мнемоникой
			out = append(out, p.next().Text)
			if p.skipBreaks().Kind == token.Comma {
				p.next()
			}
		default:
			return nil, p.fatal(diag.SynUnexpectedToken, tok.Span,
				fmt.Sprintf("expected identifier or ')', found %s", tok.Kind))
		}
	}
}

func (p *parser) parseConstant(hash token.Token) (*ast.Decl, error) {
	p.next() // 'constant'
	name, err := p.expect(token.Ident, "constant name")
	if err != nil {
		return nil, err
	}
	if err := p.registerName(name.Text, name.Span); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Assign, "'='"); err != nil {
		return nil, err
	}

	decl := &ast.Decl{
		Kind:     ast.DeclConstant,
		Name:     name.Text,
		NameSpan: name.Span,
		Span:     hash.Span,
	}

	tok := p.peek()
	switch tok.Kind {
	case token.HexLit, token.IntLit:
		decl.ConstValue = p.next().Text
	case token.Ident:
		builtin := p.next()
		if _, err := p.expect(token.LParen, "'('"); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen, "')'"); err != nil {
			return nil, err
		}
		decl.ConstBuiltin = builtin.Text
	default:
		return nil, p.fatal(diag.SynUnexpectedToken, tok.Span,
			fmt.Sprintf("expected literal or builtin call, found %s", tok.Kind))
	}

	decl.Span = decl.Span.Cover(p.toks[p.pos-1].Span)
	return decl, nil
}

func (p *parser) parseMacro(hash token.Token) (*ast.Decl, error) {
	kw := p.next() // 'macro' | 'fn'
	name, err := p.expect(token.Ident, "macro name")
	if err != nil {
		return nil, err
	}
	if err := p.registerName(name.Text, name.Span); err != nil {
		return nil, err
	}

	kind := ast.DeclMacro
	switch {
	case kw.Kind == token.KwFn:
		kind = ast.DeclFunction
	case name.Text == "CONSTRUCTOR":
		kind = ast.DeclConstructor
	case name.Text == "MAIN":
		kind = ast.DeclMain
	}

	decl := &ast.Decl{
		Kind:     kind,
		Name:     name.Text,
		NameSpan: name.Span,
		Span:     hash.Span,
	}

	if err := p.parseTemplateParams(decl); err != nil {
		return nil, err
	}

	if p.peek().Kind == token.Assign {
		p.next()
		if err := p.parseStackCounts(decl); err != nil {
			return nil, err
		}
	}

	lbrace, err := p.expect(token.LBrace, "'{'")
	if err != nil {
		return nil, err
	}
	decl.HeaderSpan = hash.Span.Cover(lbrace.Span)

	body, closeSpan, err := p.parseBody(decl, lbrace)
	if err != nil {
		return nil, err
	}
	decl.Body = body
	decl.Span = hash.Span.Cover(closeSpan)
	return decl, nil
}

func (p *parser) parseTemplateParams(decl *ast.Decl) error {
	lparen, err := p.expect(token.LParen, "'('")
	if err != nil {
		return err
	}
	sawBreak := false
	for {
		tok := p.peek()
		switch tok.Kind {
		case token.Newline:
			sawBreak = true
			p.next()
		case token.RParen:
			rparen := p.next()
			decl.TemplateSpan = lparen.Span.Cover(rparen.Span)
			decl.MultilineTpl = sawBreak
			return nil
		case token.Ident:
			param := p.next()
			decl.TemplateParams = append(decl.TemplateParams, ast.TemplateParam{
				Name: param.Text,
				Span: param.Span,
			})
			if p.peek().Kind == token.Comma {
				p.next()
			}
		default:
			return p.fatal(diag.SynUnexpectedToken, tok.Span,
				fmt.Sprintf("expected template parameter or ')', found %s", tok.Kind))
		}
	}
}

// parseStackCounts reads 'takes (N) returns (M)'. A header may omit the
// whole clause (the stack-counts rule flags that); a partially written
// clause is a parse error.
func (p *parser) parseStackCounts(decl *ast.Decl) error {
	if p.peek().Kind != token.KwTakes {
		return p.fatal(diag.SynMissingStackCounts, p.peek().Span,
			"expected 'takes (N)' after '='")
	}
	p.next()
	takes, err := p.parseCountGroup("takes")
	if err != nil {
		return err
	}

	if p.peek().Kind != token.KwReturns {
		return p.fatal(diag.SynMissingStackCounts, p.peek().Span,
			"expected 'returns (M)' after takes count")
	}
	p.next()
	returns, err := p.parseCountGroup("returns")
	if err != nil {
		return err
	}

	decl.HasStackCounts = true
	decl.Takes = takes
	decl.Returns = returns
	return nil
}

func (p *parser) parseCountGroup(what string) (int, error) {
	if p.peek().Kind != token.LParen {
		return 0, p.fatal(diag.SynMissingStackCounts, p.peek().Span,
			fmt.Sprintf("expected '(' after '%s'", what))
	}
	p.next()
	lit := p.peek()
	if lit.Kind != token.IntLit {
		return 0, p.fatal(diag.SynMissingStackCounts, lit.Span,
			fmt.Sprintf("expected %s count, found %s", what, lit.Kind))
	}
	p.next()
	n, err := strconv.Atoi(lit.Text)
	if err != nil {
		return 0, p.fatal(diag.SynMissingStackCounts, lit.Span,
			fmt.Sprintf("invalid %s count %q", what, lit.Text))
	}
	if p.peek().Kind != token.RParen {
		return 0, p.fatal(diag.SynMissingStackCounts, p.peek().Span,
			fmt.Sprintf("expected ')' after %s count", what))
	}
	p.next()
	return n, nil
}
