package parser

import (
	"errors"
	"fmt"

	"hufflint/internal/ast"
	"hufflint/internal/diag"
	"hufflint/internal/source"
	"hufflint/internal/token"
)

// ErrUnanalyzable is returned when the file failed to parse. The fatal
// diagnostic has already been delivered to the Reporter.
var ErrUnanalyzable = errors.New("parser: file is unanalyzable")

type Options struct {
	Reporter diag.Reporter
}

type parser struct {
	fs    *source.FileSet
	file  *source.File
	toks  []token.Token
	pos   int
	opts  Options
	names map[string]source.Span // для поиска дубликатов
}

// ParseFile groups a token stream into top-level declarations with attached
// doc blocks. Parse errors are fatal for the file: the Reporter receives a
// single SevFatal diagnostic and ErrUnanalyzable is returned.
func ParseFile(fs *source.FileSet, fileID source.FileID, toks []token.Token, opts Options) (*ast.File, error) {
	p := &parser{
		fs:    fs,
		file:  fs.Get(fileID),
		toks:  toks,
		opts:  opts,
		names: make(map[string]source.Span),
	}

	out := &ast.File{ID: fileID}
	var pendingDoc *ast.DocBlock

	for {
		tok := p.peek()
		switch tok.Kind {
		case token.EOF:
			return out, nil

		case token.Newline:
			// пустая строка разрывает привязку doc-блока
			if pendingDoc != nil && isBlank(tok) {
				pendingDoc = nil
			}
			p.next()

		case token.DocComment, token.FileDocComment:
			block := p.collectDocBlock()
			if block.FileLevel {
				out.FileDocs = append(out.FileDocs, block)
				pendingDoc = nil
			} else {
				pendingDoc = block
			}

		case token.LineComment, token.BlockComment:
			// свободный комментарий между декларациями
			p.next()

		case token.HashInclude:
			decl, err := p.parseInclude()
			if err != nil {
				return nil, err
			}
			decl.Doc = pendingDoc
			pendingDoc = nil
			out.Decls = append(out.Decls, decl)

		case token.HashDefine:
			decl, err := p.parseDefine()
			if err != nil {
				return nil, err
			}
			decl.Doc = pendingDoc
			pendingDoc = nil
			out.Decls = append(out.Decls, decl)

		default:
			return nil, p.fatal(diag.SynUnexpectedToken, tok.Span,
				fmt.Sprintf("unexpected %s at top level", tok.Kind))
		}
	}
}

func (p *parser) peek() token.Token {
	if p.pos >= len(p.toks) {
		return token.Token{Kind: token.EOF}
	}
	return p.toks[p.pos]
}

func (p *parser) next() token.Token {
	tok := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return tok
}

// skipBreaks съедает переводы строк и возвращает первый значимый токен.
func (p *parser) skipBreaks() token.Token {
	for p.peek().Kind == token.Newline {
		p.next()
	}
	return p.peek()
}

func (p *parser) expect(kind token.Kind, what string) (token.Token, error) {
	tok := p.peek()
	if tok.Kind != kind {
		return tok, p.fatal(diag.SynUnexpectedToken, tok.Span,
			fmt.Sprintf("expected %s, found %s", what, tok.Kind))
	}
	return p.next(), nil
}

func (p *parser) fatal(code diag.Code, sp source.Span, msg string) error {
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevFatal, sp, msg, nil, nil)
	}
	return ErrUnanalyzable
}

// registerName enforces unique declaration names across the file.
func (p *parser) registerName(name string, sp source.Span) error {
	if prev, ok := p.names[name]; ok {
		if p.opts.Reporter != nil {
			b := diag.ReportFatal(p.opts.Reporter, diag.SynDuplicateDeclaration, sp,
				fmt.Sprintf("duplicate declaration name %q", name))
			b.WithNote(prev, "previously declared here")
			b.Emit()
		}
		return ErrUnanalyzable
	}
	p.names[name] = sp
	return nil
}

// collectDocBlock собирает подряд идущие '///' строки (без пустых строк между).
func (p *parser) collectDocBlock() *ast.DocBlock {
	block := &ast.DocBlock{}
	for {
		tok := p.peek()
		if tok.IsDoc() {
			if tok.Kind == token.FileDocComment {
				block.FileLevel = true
			}
			if block.Span.Empty() {
				block.Span = tok.Span
			} else {
				block.Span = block.Span.Cover(tok.Span)
			}
			block.Lines = append(block.Lines, tok)
			p.next()
			continue
		}
		if tok.Kind == token.Newline && !isBlank(tok) && p.peekAfterNewline().IsDoc() {
			p.next()
			continue
		}
		return block
	}
}

func (p *parser) peekAfterNewline() token.Token {
	if p.pos+1 >= len(p.toks) {
		return token.Token{Kind: token.EOF}
	}
	return p.toks[p.pos+1]
}

// isBlank reports whether a Newline token spans more than one line break.
func isBlank(tok token.Token) bool {
	count := 0
	for i := 0; i < len(tok.Text); i++ {
		if tok.Text[i] == '\n' {
			count++
		}
	}
	return count > 1
}
