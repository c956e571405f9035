package rules

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"hufflint/internal/ast"
	"hufflint/internal/diag"
)

// headerWrap flags declaration headers wider than the configured line
// width and offers the one-parameter-per-line rewrite of the template
// list, trailing comma included.
type headerWrap struct{}

func (headerWrap) Rule() diag.Code { return diag.StyHeaderWrap }

func (headerWrap) Check(ctx *Context, r diag.Reporter) {
	for _, decl := range ctx.File.Decls {
		if !decl.Kind.HasBody() || decl.MultilineTpl {
			continue
		}
		start, _ := ctx.FS.Resolve(decl.HeaderSpan)
		width := runewidth.StringWidth(strings.TrimRight(ctx.Src.GetLine(start.Line), "\n"))
		if width <= ctx.Cfg.MaxLineWidth {
			continue
		}

		b := diag.ReportWarning(r, diag.StyHeaderWrap, decl.HeaderSpan,
			fmt.Sprintf("header is %d columns wide, limit is %d", width, ctx.Cfg.MaxLineWidth))
		if len(decl.TemplateParams) > 0 {
			b.WithFix("write one template parameter per line",
				diag.TextEdit{
					Span:    decl.TemplateSpan,
					NewText: wrappedParamList(decl.TemplateParams, ctx.Cfg.BaseIndentWidth),
					OldText: string(ctx.Src.Content[decl.TemplateSpan.Start:decl.TemplateSpan.End]),
				})
		}
		b.Emit()
	}
}

func wrappedParamList(params []ast.TemplateParam, indent int) string {
	var sb strings.Builder
	sb.WriteString("(\n")
	pad := strings.Repeat(" ", indent)
	for _, p := range params {
		sb.WriteString(pad)
		sb.WriteString(p.Name)
		sb.WriteString(",\n")
	}
	sb.WriteString(")")
	return sb.String()
}
