package ast

import (
	"hufflint/internal/source"
)

// DeclKind identifies a top-level declaration variant.
type DeclKind uint8

const (
	DeclInvalid DeclKind = iota
	// DeclInclude is an '#include "path"' directive.
	DeclInclude
	// DeclAbiFunction is an ABI signature: '#define function name(args) mutability returns (rets)'.
	DeclAbiFunction
	// DeclConstant is '#define constant NAME = value-or-builtin-call'.
	DeclConstant
	// DeclMacro is '#define macro NAME(params) = takes (N) returns (M) { body }'.
	DeclMacro
	// DeclFunction is the 'fn' variant of a macro (unique labels per expansion).
	DeclFunction
	// DeclConstructor is the macro named CONSTRUCTOR.
	DeclConstructor
	// DeclMain is the macro named MAIN.
	DeclMain
)

func (k DeclKind) String() string {
	switch k {
	case DeclInclude:
		return "include"
	case DeclAbiFunction:
		return "function"
	case DeclConstant:
		return "constant"
	case DeclMacro:
		return "macro"
	case DeclFunction:
		return "fn"
	case DeclConstructor:
		return "constructor"
	case DeclMain:
		return "main"
	}
	return "invalid"
}

// HasBody reports whether the declaration kind owns a Scope.
func (k DeclKind) HasBody() bool {
	switch k {
	case DeclMacro, DeclFunction, DeclConstructor, DeclMain:
		return true
	default:
		return false
	}
}

// TemplateParam is one name in a macro's parenthesized parameter list.
type TemplateParam struct {
	Name string
	Span source.Span
}

// Decl is a single top-level declaration. Field groups are populated
// per Kind; the struct stays flat the way the line model does (no
// variant interface tree).
type Decl struct {
	Kind     DeclKind
	Name     string
	Span     source.Span // full declaration including body
	NameSpan source.Span
	Doc      *DocBlock

	// DeclInclude
	IncludePath string // unquoted path

	// DeclAbiFunction
	Params     []string
	Mutability string
	Rets       []string

	// DeclConstant: exactly one of the two is set
	ConstValue   string // raw literal text
	ConstBuiltin string // builtin call name, e.g. FREE_STORAGE_POINTER

	// Macro-shaped kinds
	TemplateParams []TemplateParam
	TemplateSpan   source.Span // the '(...)' list including parens
	MultilineTpl   bool        // params were written one per line
	HasStackCounts bool
	Takes          int
	Returns        int
	HeaderSpan     source.Span // '#define' through the opening '{'
	Body           *Scope
}

// File is the parsed model of one logical source file.
type File struct {
	ID    source.FileID
	Decls []*Decl
	// FileDocs holds every H1-opening doc block in source order. Exactly
	// one, positioned before all declarations, is canonical; the rule
	// engine flags the rest.
	FileDocs []*DocBlock
}

// Scopes returns every declaration body in source order.
func (f *File) Scopes() []*Scope {
	out := make([]*Scope, 0, len(f.Decls))
	for _, d := range f.Decls {
		if d.Body != nil {
			out = append(out, d.Body)
		}
	}
	return out
}
