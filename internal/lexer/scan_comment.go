package lexer

import (
	"strings"

	"hufflint/internal/diag"
	"hufflint/internal/token"
)

// scanComment разбирает '//', '///' и '/* */'. Doc-строка, открывающая
// H1-заголовок, получает отдельный вид FileDocComment: правило file-doc
// отличает файловый блок от блоков деклараций по нему.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'

	switch lx.cursor.Peek() {
	case '/':
		lx.cursor.Bump()
		kind := token.LineComment
		if lx.cursor.Peek() == '/' {
			lx.cursor.Bump()
			kind = token.DocComment
		}
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		text := lx.text(sp)
		if kind == token.DocComment && isFileDocOpener(text) {
			kind = token.FileDocComment
		}
		return token.Token{Kind: kind, Span: sp, Text: text}

	case '*':
		lx.cursor.Bump()
		depth := 1
		for !lx.cursor.EOF() && depth > 0 {
			if b0, b1, ok := lx.cursor.Peek2(); ok {
				if b0 == '/' && b1 == '*' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					depth++
					continue
				}
				if b0 == '*' && b1 == '/' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					depth--
					continue
				}
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		if depth > 0 {
			return lx.fail(diag.LexUnterminatedComment, sp, "unterminated block comment")
		}
		return token.Token{Kind: token.BlockComment, Span: sp, Text: lx.text(sp)}

	default:
		sp := lx.cursor.SpanFrom(start)
		return lx.fail(diag.LexInvalidCharacter, sp, "unexpected character '/'")
	}
}

// isFileDocOpener reports whether a '///' line carries an H1 markdown title.
func isFileDocOpener(text string) bool {
	body := strings.TrimPrefix(text, "///")
	body = strings.TrimLeft(body, " \t")
	return strings.HasPrefix(body, "# ")
}
