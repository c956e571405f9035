package token

import (
	"hufflint/internal/source"
)

// Token represents a single source token with its location and raw text.
// Comments are tokens here, not trivia: the style rules inspect comment
// content and position, so nothing is discarded during lexing.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case HexLit, IntLit, StringLit:
		return true
	default:
		return false
	}
}

// IsComment reports whether the token is any comment variant.
func (t Token) IsComment() bool {
	switch t.Kind {
	case LineComment, BlockComment, DocComment, FileDocComment:
		return true
	default:
		return false
	}
}

// IsDoc reports whether the token is a documentation comment line.
func (t Token) IsDoc() bool {
	return t.Kind == DocComment || t.Kind == FileDocComment
}

// IsKeyword reports whether the token is a declaration keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwMacro, KwFn, KwFunction, KwConstant, KwTakes, KwReturns:
		return true
	default:
		return false
	}
}

// IsDirective reports whether the token is a '#'-prefixed directive keyword.
func (t Token) IsDirective() bool {
	return t.Kind == HashInclude || t.Kind == HashDefine
}
