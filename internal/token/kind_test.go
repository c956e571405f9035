package token_test

import (
	"testing"

	"hufflint/internal/source"
	"hufflint/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{token.HexLit, token.IntLit, token.StringLit}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.Opcode, token.KwMacro, token.LParen}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsComment(t *testing.T) {
	comments := []token.Kind{
		token.LineComment, token.BlockComment,
		token.DocComment, token.FileDocComment,
	}
	for _, k := range comments {
		if !tok(k).IsComment() {
			t.Fatalf("%v should be comment", k)
		}
	}
	if tok(token.Ident).IsComment() {
		t.Fatal("Ident must NOT be comment")
	}
	if !tok(token.DocComment).IsDoc() || tok(token.LineComment).IsDoc() {
		t.Fatal("IsDoc misclassifies")
	}
}

func TestLookupKeyword(t *testing.T) {
	cases := map[string]token.Kind{
		"macro":    token.KwMacro,
		"fn":       token.KwFn,
		"function": token.KwFunction,
		"constant": token.KwConstant,
		"takes":    token.KwTakes,
		"returns":  token.KwReturns,
	}
	for word, want := range cases {
		got, ok := token.LookupKeyword(word)
		if !ok || got != want {
			t.Errorf("LookupKeyword(%q) = %v, %v", word, got, ok)
		}
	}
	// регистрозависимость
	if _, ok := token.LookupKeyword("MACRO"); ok {
		t.Error("uppercase must not be a keyword")
	}
}

func TestLookupDirective(t *testing.T) {
	if k, ok := token.LookupDirective("#include"); !ok || k != token.HashInclude {
		t.Errorf("LookupDirective(#include) = %v, %v", k, ok)
	}
	if k, ok := token.LookupDirective("#define"); !ok || k != token.HashDefine {
		t.Errorf("LookupDirective(#define) = %v, %v", k, ok)
	}
	if _, ok := token.LookupDirective("#pragma"); ok {
		t.Error("#pragma must not be recognized")
	}
}
