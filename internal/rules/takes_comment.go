package rules

import (
	"fmt"

	"hufflint/internal/diag"
)

// takesComment requires a macro consuming stack inputs to open its body
// with a '// takes: [...]' comment naming them.
type takesComment struct{}

func (takesComment) Rule() diag.Code { return diag.StyTakesComment }

func (takesComment) Check(ctx *Context, r diag.Reporter) {
	for _, decl := range ctx.File.Decls {
		if decl.Body == nil || !decl.HasStackCounts || decl.Takes == 0 {
			continue
		}
		if len(decl.Body.Lines) == 0 {
			continue
		}
		first := decl.Body.Lines[0]
		if first.Comment != nil && first.Comment.IsTakes {
			continue
		}
		diag.ReportWarning(r, diag.StyTakesComment, first.Span,
			fmt.Sprintf("%s takes %d stack items but its first body line carries no takes comment",
				decl.Name, decl.Takes)).
			Emit()
	}
}
