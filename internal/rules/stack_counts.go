package rules

import (
	"fmt"

	"hufflint/internal/diag"
)

// stackCounts requires every body-owning declaration to state explicit
// takes/returns counts in its header.
type stackCounts struct{}

func (stackCounts) Rule() diag.Code { return diag.StyStackCounts }

func (stackCounts) Check(ctx *Context, r diag.Reporter) {
	for _, decl := range ctx.File.Decls {
		if !decl.Kind.HasBody() || decl.HasStackCounts {
			continue
		}
		diag.ReportWarning(r, diag.StyStackCounts, decl.NameSpan,
			fmt.Sprintf("%s %s declares no takes/returns counts", decl.Kind, decl.Name)).
			Emit()
	}
}
