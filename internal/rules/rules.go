// Package rules runs the style checkers. Every checker is a pure function
// of the parsed file and the derived nesting/layout results; checkers are
// independent and may run in any order or as a subset.
package rules

import (
	"hufflint/internal/align"
	"hufflint/internal/ast"
	"hufflint/internal/config"
	"hufflint/internal/diag"
	"hufflint/internal/nest"
	"hufflint/internal/source"
)

// Context bundles everything a checker may look at for one file.
type Context struct {
	FS   *source.FileSet
	Src  *source.File
	File *ast.File
	Cfg  *config.Config

	// Nesting and Layout hold the derived results per body-owning
	// declaration.
	Nesting map[*ast.Decl]nest.Result
	Layout  map[*ast.Decl]align.Result

	// Library marks batch files (by base name) that play the library
	// role: parsed successfully and declare no MAIN or CONSTRUCTOR.
	Library map[string]bool
}

// Checker is one style rule.
type Checker interface {
	// Rule returns the code every diagnostic of this checker carries.
	Rule() diag.Code
	Check(ctx *Context, r diag.Reporter)
}

// All returns every built-in checker.
func All() []Checker {
	return []Checker{
		opcodePerLine{},
		stackCounts{},
		takesComment{},
		namingByRole{},
		includeNaming{},
		alignment{},
		docStructure{},
		fileDoc{},
		declOrder{},
		headerWrap{},
	}
}

// Run executes the given checkers under the context's configuration:
// disabled rules are skipped, severity overrides applied.
func Run(ctx *Context, checkers []Checker, r diag.Reporter) {
	if ctx.Cfg == nil {
		ctx.Cfg = config.Default()
	}
	pr := Policy(ctx.Cfg, r)
	for _, c := range checkers {
		if !ctx.Cfg.RuleEnabled(c.Rule().RuleName()) {
			continue
		}
		c.Check(ctx, pr)
	}
}

// Policy wraps a reporter with the configuration's rule filter and
// severity overrides. Non-rule codes (lex/parse/fmt) pass through.
func Policy(cfg *config.Config, next diag.Reporter) diag.Reporter {
	return policyReporter{cfg: cfg, next: next}
}

type policyReporter struct {
	cfg  *config.Config
	next diag.Reporter
}

func (p policyReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note, fixes []diag.Fix) {
	if name := code.RuleName(); name != "" {
		if !p.cfg.RuleEnabled(name) {
			return
		}
		if over, ok := p.cfg.SeverityOverride(name); ok {
			sev = over
		}
	}
	p.next.Report(code, sev, primary, msg, notes, fixes)
}
