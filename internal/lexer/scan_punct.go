package lexer

import (
	"fmt"

	"hufflint/internal/diag"
	"hufflint/internal/token"
)

var punct = map[byte]token.Kind{
	'(': token.LParen,
	')': token.RParen,
	'{': token.LBrace,
	'}': token.RBrace,
	'[': token.LBracket,
	']': token.RBracket,
	'<': token.Lt,
	'>': token.Gt,
	',': token.Comma,
	'=': token.Assign,
	':': token.Colon,
}

func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)

	if kind, ok := punct[b]; ok {
		return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
	}
	return lx.fail(diag.LexInvalidCharacter, sp, fmt.Sprintf("invalid character %q", b))
}
