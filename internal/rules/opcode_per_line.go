package rules

import (
	"fmt"
	"strings"

	"hufflint/internal/ast"
	"hufflint/internal/dialect"
	"hufflint/internal/diag"
	"hufflint/internal/token"
)

// opcodePerLine flags code lines carrying more than one instruction,
// modulo the small set of idioms the convention reads as a single unit.
type opcodePerLine struct{}

func (opcodePerLine) Rule() diag.Code { return diag.StyOpcodePerLine }

func (opcodePerLine) Check(ctx *Context, r diag.Reporter) {
	for _, scope := range ctx.File.Scopes() {
		for _, line := range scope.Lines {
			units := splitUnits(line)
			if len(units) <= 1 || exemptIdiom(units) {
				continue
			}
			diag.ReportWarning(r, diag.StyOpcodePerLine, line.Span,
				fmt.Sprintf("%d instructions on one line, expected one", len(units))).
				Emit()
		}
	}
}

type unitKind uint8

const (
	uOpcode unitKind = iota
	uLiteral
	uConstRef
	uTemplateRef
	uLabelRef
	uInvoke
)

type unit struct {
	kind unitKind
	text string
}

// splitUnits groups a line's tokens into instruction units: an opcode, a
// pushed literal, a constant or template reference, a pushed label, or a
// macro invocation each count as one.
func splitUnits(line *ast.CodeLine) []unit {
	var units []unit
	toks := line.Tokens
	for i := 0; i < len(toks); i++ {
		switch toks[i].Kind {
		case token.Opcode:
			units = append(units, unit{uOpcode, toks[i].Text})
		case token.HexLit, token.IntLit:
			units = append(units, unit{uLiteral, toks[i].Text})
		case token.LBracket:
			if i+2 < len(toks) && toks[i+1].Kind == token.Ident && toks[i+2].Kind == token.RBracket {
				units = append(units, unit{uConstRef, toks[i+1].Text})
				i += 2
			}
		case token.Lt:
			if i+2 < len(toks) && toks[i+1].Kind == token.Ident && toks[i+2].Kind == token.Gt {
				units = append(units, unit{uTemplateRef, toks[i+1].Text})
				i += 2
			}
		case token.Ident:
			if i+1 < len(toks) && toks[i+1].Kind == token.LParen {
				name := toks[i].Text
				depth := 0
				for i++; i < len(toks); i++ {
					if toks[i].Kind == token.LParen {
						depth++
					} else if toks[i].Kind == token.RParen {
						if depth--; depth == 0 {
							break
						}
					}
				}
				units = append(units, unit{uInvoke, name})
			} else {
				units = append(units, unit{uLabelRef, toks[i].Text})
			}
		}
	}
	return units
}

// exemptIdiom recognizes the multi-instruction lines the style allows:
//
//	sload dup1                duplication of the line's result
//	[SLOT] sload              pointer push paired with its load
//	success jumpi             destination push paired with its jump
//	0x00 calldataload 0xE0 shr   selector extraction
//	dup1 0xa9059cbb eq transfer jumpi   selector dispatch
//	0x00 0x00 revert          bare zero/zero terminator
func exemptIdiom(units []unit) bool {
	n := len(units)

	if n == 2 && units[0].kind == uOpcode && units[1].kind == uOpcode &&
		dialect.IsDup(units[1].text) {
		return true
	}

	// Jump destination and the jump itself live on one line: the label
	// push is not an instruction of its own. Без этого у условного
	// перехода вообще не было бы канонической формы.
	if n == 2 && units[0].kind == uLabelRef &&
		units[1].kind == uOpcode && dialect.IsJump(units[1].text) {
		return true
	}

	if n == 2 && (units[0].kind == uConstRef || units[0].kind == uLiteral) &&
		units[1].kind == uOpcode && dialect.IsLoad(units[1].text) {
		return true
	}

	// Selector extraction: push offset, calldataload, push shift, shr/div.
	if n == 4 &&
		units[0].kind == uLiteral &&
		units[1].kind == uOpcode && units[1].text == "calldataload" &&
		units[2].kind == uLiteral &&
		units[3].kind == uOpcode && (units[3].text == "shr" || units[3].text == "div") {
		return true
	}

	// Selector dispatch: [dup] push-sig eq label jumpi.
	cmp := units
	if n >= 1 && cmp[0].kind == uOpcode && dialect.IsDup(cmp[0].text) {
		cmp = cmp[1:]
	}
	if len(cmp) == 4 &&
		cmp[0].kind == uLiteral &&
		cmp[1].kind == uOpcode && cmp[1].text == "eq" &&
		cmp[2].kind == uLabelRef &&
		cmp[3].kind == uOpcode && cmp[3].text == "jumpi" {
		return true
	}

	// Bare terminator: zero pushes only, then revert/return/stop.
	last := units[n-1]
	if last.kind == uOpcode && dialect.IsTerminator(last.text) && n <= 3 {
		for _, u := range units[:n-1] {
			if u.kind != uLiteral || !isZeroLiteral(u.text) {
				return false
			}
		}
		return true
	}

	return false
}

func isZeroLiteral(text string) bool {
	text = strings.TrimPrefix(strings.TrimPrefix(text, "0x"), "0X")
	if text == "" {
		return false
	}
	return strings.Trim(text, "0") == ""
}
