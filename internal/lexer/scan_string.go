package lexer

import (
	"hufflint/internal/diag"
	"hufflint/internal/token"
)

// scanString разбирает строковый литерал в двойных кавычках (путь включения).
// Перевод строки внутри литерала недопустим.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // открывающая '"'

	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			sp := lx.cursor.SpanFrom(start)
			return lx.fail(diag.LexUnterminatedString, sp, "unterminated string literal")
		}
		b := lx.cursor.Bump()
		if b == '"' {
			break
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp)}
}
