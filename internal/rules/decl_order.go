package rules

import (
	"fmt"

	"hufflint/internal/ast"
	"hufflint/internal/diag"
	"hufflint/internal/source"
)

// declOrder enforces the fixed file layout: includes, ABI signatures,
// constants, constructor, main, macros, then fns.
type declOrder struct{}

func (declOrder) Rule() diag.Code { return diag.StyDeclOrder }

var categoryRank = map[ast.DeclKind]int{
	ast.DeclInclude:     0,
	ast.DeclAbiFunction: 1,
	ast.DeclConstant:    2,
	ast.DeclConstructor: 3,
	ast.DeclMain:        4,
	ast.DeclMacro:       5,
	ast.DeclFunction:    6,
}

func (declOrder) Check(ctx *Context, r diag.Reporter) {
	maxRank := -1
	var maxDecl *ast.Decl
	for _, decl := range ctx.File.Decls {
		rank, ok := categoryRank[decl.Kind]
		if !ok {
			continue
		}
		if rank < maxRank {
			b := diag.ReportWarning(r, diag.StyDeclOrder, declHeadSpan(decl),
				fmt.Sprintf("%s %q appears after a %s declaration", decl.Kind, declLabel(decl), maxDecl.Kind))
			b.WithNote(declHeadSpan(maxDecl), fmt.Sprintf("%s %q declared here", maxDecl.Kind, declLabel(maxDecl)))
			b.Emit()
			continue
		}
		maxRank, maxDecl = rank, decl
	}
}

func declHeadSpan(d *ast.Decl) source.Span {
	if d.Kind == ast.DeclInclude {
		return d.Span
	}
	return d.NameSpan
}

func declLabel(d *ast.Decl) string {
	if d.Kind == ast.DeclInclude {
		return d.IncludePath
	}
	return d.Name
}
