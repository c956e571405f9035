package rules

import (
	"fmt"
	"strings"

	"hufflint/internal/ast"
	"hufflint/internal/dialect"
	"hufflint/internal/diag"
)

// namingByRole infers what a constant or macro is for from how it is
// used, then checks the name advertises that role. Inference never
// guesses: an ambiguous usage profile skips the check unless strict
// inference is configured.
type namingByRole struct{}

func (namingByRole) Rule() diag.Code { return diag.StyNamingByRole }

type role uint8

const (
	roleUnknown role = iota
	roleStorageSlot
	rolePointer
	roleSelector
	roleCast
	roleDispatch
)

func (ro role) String() string {
	switch ro {
	case roleStorageSlot:
		return "storage slot"
	case rolePointer:
		return "memory pointer"
	case roleSelector:
		return "function selector"
	case roleCast:
		return "type cast"
	case roleDispatch:
		return "ABI dispatcher"
	}
	return "unknown"
}

// constUsage is the observed usage profile of one constant.
type constUsage struct {
	storage  int
	memory   int
	selector int
	other    int
}

func (u constUsage) total() int { return u.storage + u.memory + u.selector + u.other }

func (namingByRole) Check(ctx *Context, r diag.Reporter) {
	usage := collectConstUsage(ctx.File)

	for _, decl := range ctx.File.Decls {
		switch decl.Kind {
		case ast.DeclConstant:
			checkConstantName(ctx, decl, usage[decl.Name], r)
		case ast.DeclMacro, ast.DeclFunction:
			checkMacroName(decl, r)
		}
	}
}

// collectConstUsage scans every scope for constant references and
// classifies each by the opcodes that follow on the same line.
func collectConstUsage(file *ast.File) map[string]constUsage {
	usage := make(map[string]constUsage)
	for _, scope := range file.Scopes() {
		sawExtraction := scopeExtractsSelector(scope)
		for _, line := range scope.Lines {
			units := splitUnits(line)
			for i, u := range units {
				if u.kind != uConstRef {
					continue
				}
				prof := usage[u.text]
				switch classifyConstUse(units[i+1:], sawExtraction) {
				case roleStorageSlot:
					prof.storage++
				case rolePointer:
					prof.memory++
				case roleSelector:
					prof.selector++
				default:
					prof.other++
				}
				usage[u.text] = prof
			}
		}
	}
	return usage
}

func classifyConstUse(rest []unit, sawExtraction bool) role {
	for _, u := range rest {
		if u.kind != uOpcode {
			continue
		}
		switch {
		case dialect.IsStorageOp(u.text):
			return roleStorageSlot
		case dialect.IsMemoryOp(u.text):
			return rolePointer
		case u.text == "eq" && sawExtraction:
			return roleSelector
		}
	}
	return roleUnknown
}

// scopeExtractsSelector reports whether the scope performs the selector
// extraction idiom, which makes 'eq' comparisons selector dispatches.
func scopeExtractsSelector(scope *ast.Scope) bool {
	for _, line := range scope.Lines {
		for _, tok := range line.Tokens {
			if tok.Text == "calldataload" {
				return true
			}
		}
	}
	return false
}

func checkConstantName(ctx *Context, decl *ast.Decl, prof constUsage, r diag.Reporter) {
	inferred := roleUnknown
	switch {
	case decl.ConstBuiltin == dialect.StorageBuiltin:
		inferred = roleStorageSlot
	case prof.total() == 0:
		return // никак не используется, роли нет
	case prof.storage == prof.total():
		inferred = roleStorageSlot
	case prof.memory == prof.total():
		inferred = rolePointer
	case prof.selector == prof.total():
		inferred = roleSelector
	}

	if inferred == roleUnknown {
		if ctx.Cfg.RoleInferenceStrict {
			diag.ReportError(r, diag.StyNamingByRole, decl.NameSpan,
				fmt.Sprintf("role of constant %s cannot be inferred from its usage", decl.Name)).
				Emit()
		}
		return
	}

	var want string
	switch inferred {
	case roleStorageSlot:
		want = "_SLOT"
	case rolePointer:
		want = "_PTR"
	case roleSelector:
		want = "_SELECTOR"
	}
	if strings.HasSuffix(decl.Name, want) {
		return
	}
	diag.ReportWarning(r, diag.StyNamingByRole, decl.NameSpan,
		fmt.Sprintf("constant %s is used as a %s; rename to %s%s",
			decl.Name, inferred, decl.Name, want)).
		Emit()
}

// checkMacroName covers the macro-shaped roles: selector dispatchers and
// pure type casts.
func checkMacroName(decl *ast.Decl, r diag.Reporter) {
	if decl.Body == nil {
		return
	}
	switch {
	case macroDispatches(decl.Body):
		if decl.Name == "MAIN" || strings.HasSuffix(decl.Name, "_DISPATCH") {
			return
		}
		diag.ReportWarning(r, diag.StyNamingByRole, decl.NameSpan,
			fmt.Sprintf("%s dispatches on the call selector; rename to %s_DISPATCH", decl.Name, decl.Name)).
			Emit()
	case macroCasts(decl):
		if strings.HasPrefix(decl.Name, "TO_") {
			return
		}
		diag.ReportWarning(r, diag.StyNamingByRole, decl.NameSpan,
			fmt.Sprintf("%s is a pure type cast; rename to TO_%s", decl.Name, decl.Name)).
			Emit()
	}
}

// macroDispatches: the body extracts the call selector and branches on
// equality comparisons.
func macroDispatches(scope *ast.Scope) bool {
	if !scopeExtractsSelector(scope) {
		return false
	}
	sawEq, sawJumpi := false, false
	for _, line := range scope.Lines {
		for _, tok := range line.Tokens {
			switch tok.Text {
			case "eq":
				sawEq = true
			case "jumpi":
				sawJumpi = true
			}
		}
	}
	return sawEq && sawJumpi
}

// macroCasts: one value in, one value out, and the body is nothing but
// masking and shifting.
func macroCasts(decl *ast.Decl) bool {
	if !decl.HasStackCounts || decl.Takes != 1 || decl.Returns != 1 {
		return false
	}
	sawMask := false
	for _, line := range decl.Body.Lines {
		for _, u := range splitUnits(line) {
			switch u.kind {
			case uLiteral:
				continue
			case uOpcode:
				switch {
				case u.text == "and" || u.text == "signextend":
					sawMask = true
				case u.text == "shl" || u.text == "shr" ||
					dialect.IsDup(u.text) || dialect.IsSwap(u.text):
					// допустимо в касте
				default:
					return false
				}
			default:
				return false
			}
		}
	}
	return sawMask
}
