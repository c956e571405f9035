package lexer

import (
	"hufflint/internal/diag"
	"hufflint/internal/dialect"
	"hufflint/internal/token"
)

// scanIdentLike разбирает идентификатор и классифицирует его:
// ключевое слово, мнемоника инструкции, определение метки (name:) или Ident.
func (lx *Lexer) scanIdentLike() token.Token {
	start := lx.cursor.Mark()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	nameSpan := lx.cursor.SpanFrom(start)
	name := lx.text(nameSpan)

	if kind, ok := token.LookupKeyword(name); ok {
		return token.Token{Kind: kind, Span: nameSpan, Text: name}
	}

	// 'name:' — определение метки; двоеточие входит в спан токена.
	// Мнемоника меткой быть не может.
	if lx.cursor.Peek() == ':' && !dialect.IsOpcode(name) {
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.LabelDecl, Span: sp, Text: lx.text(sp)}
	}

	if dialect.IsOpcode(name) {
		return token.Token{Kind: token.Opcode, Span: nameSpan, Text: name}
	}

	return token.Token{Kind: token.Ident, Span: nameSpan, Text: name}
}

func (lx *Lexer) scanDirective() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	word := lx.text(sp)

	if kind, ok := token.LookupDirective(word); ok {
		return token.Token{Kind: kind, Span: sp, Text: word}
	}
	return lx.fail(diag.LexInvalidCharacter, sp, "unknown directive "+word)
}
