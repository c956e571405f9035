package lexer

import (
	"errors"

	"hufflint/internal/diag"
	"hufflint/internal/source"
	"hufflint/internal/token"
)

// ErrUnanalyzable is returned by Tokenize when lexing hit a fatal error.
// The offending diagnostic has already been delivered to the Reporter;
// the file contributes no further analysis.
var ErrUnanalyzable = errors.New("lexer: file is unanalyzable")

type Options struct {
	Reporter diag.Reporter // может быть nil — тогда ошибки не репортятся
}

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
	failed bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
	}
}

// Next возвращает следующий токен. Комментарии и переводы строк — тоже
// токены: правила стиля смотрят на их содержимое и позицию.
// После EOF или фатальной ошибки всегда возвращает EOF/Invalid.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	if lx.failed {
		return token.Token{Kind: token.Invalid, Span: lx.emptySpan()}
	}

	lx.skipSpaces()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Text: "",
		}
	}

	ch := lx.cursor.Peek()

	switch {
	case ch == '\n':
		return lx.scanNewlines()

	case ch == '/':
		return lx.scanComment()

	case ch == '#':
		return lx.scanDirective()

	case isIdentStartByte(ch):
		return lx.scanIdentLike()

	case isDec(ch):
		return lx.scanNumber()

	case ch == '"':
		return lx.scanString()

	default:
		return lx.scanPunct()
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Failed reports whether a fatal lex error occurred.
func (lx *Lexer) Failed() bool { return lx.failed }

// Tokenize collects every token of the file up to EOF. On a fatal lex error
// the already-reported diagnostic stands and ErrUnanalyzable is returned.
func Tokenize(file *source.File, opts Options) ([]token.Token, error) {
	lx := New(file, opts)
	var tokens []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.Invalid {
			return nil, ErrUnanalyzable
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

func (lx *Lexer) skipSpaces() {
	for {
		b := lx.cursor.Peek()
		if b != ' ' && b != '\t' {
			return
		}
		lx.cursor.Bump()
	}
}

func (lx *Lexer) scanNewlines() token.Token {
	start := lx.cursor.Mark()
	for {
		b := lx.cursor.Peek()
		// коалесцируем подряд идущие переводы строк вместе с отступами
		if b == '\n' {
			lx.cursor.Bump()
			continue
		}
		if b == ' ' || b == '\t' {
			// пробелы съедаем только если за ними снова '\n'
			mark := lx.cursor.Mark()
			for lx.cursor.Peek() == ' ' || lx.cursor.Peek() == '\t' {
				lx.cursor.Bump()
			}
			if lx.cursor.Peek() == '\n' {
				continue
			}
			lx.cursor.Off = uint32(mark)
			break
		}
		break
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.Newline,
		Span: sp,
		Text: lx.text(sp),
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

// fail репортит фатальную ошибку и переводит лексер в терминальное состояние.
func (lx *Lexer) fail(code diag.Code, sp source.Span, msg string) token.Token {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevFatal, sp, msg, nil, nil)
	}
	lx.failed = true
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
