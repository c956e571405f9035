package rules

import (
	"fmt"
	"path"
	"strings"

	"hufflint/internal/ast"
	"hufflint/internal/diag"
)

// LibraryPrefix is the mandatory base-name prefix of library files, that
// is files declaring no MAIN or CONSTRUCTOR entry point.
const LibraryPrefix = "Huff"

// includeNaming checks that every included library file carries the
// prefix. Targets outside the batch are skipped: the role of a file we
// never parsed is unknown, and guessing is worse than silence.
type includeNaming struct{}

func (includeNaming) Rule() diag.Code { return diag.StyIncludeNaming }

func (includeNaming) Check(ctx *Context, r diag.Reporter) {
	for _, decl := range ctx.File.Decls {
		if decl.Kind != ast.DeclInclude {
			continue
		}
		base := path.Base(decl.IncludePath)
		isLib, known := ctx.Library[base]
		if !known || !isLib {
			continue
		}
		if strings.HasPrefix(base, LibraryPrefix) {
			continue
		}
		diag.ReportWarning(r, diag.StyIncludeNaming, decl.Span,
			fmt.Sprintf("included file %q is a library and must be named with the %q prefix",
				base, LibraryPrefix)).
			Emit()
	}
}
