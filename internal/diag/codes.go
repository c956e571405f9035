package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo                 Code = 1000
	LexInvalidCharacter     Code = 1001
	LexUnterminatedString   Code = 1002
	LexUnterminatedComment  Code = 1003

	// Парсерные
	SynInfo                    Code = 2000
	SynUnexpectedToken         Code = 2001
	SynMismatchedBraces        Code = 2002
	SynMissingStackCounts      Code = 2003
	SynDuplicateDeclaration    Code = 2004

	// Стилевые (rule engine)
	StyInfo             Code = 3000
	StyOpcodePerLine    Code = 3001
	StyNamingByRole     Code = 3002
	StyStackCounts      Code = 3003
	StyIncludeNaming    Code = 3004
	StyAlignment        Code = 3005
	StyDocStructure     Code = 3006
	StyDeclOrder        Code = 3007
	StyTakesComment     Code = 3008
	StyFileDoc          Code = 3009
	StyUnreachedLabel   Code = 3010
	StyUnresolvedLabel  Code = 3011
	StyHeaderWrap       Code = 3012

	// Форматтер
	FmtInfo             Code = 4000
	FmtOverlappingFixes Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:             "Unknown error",
	LexInfo:                 "Lexical information",
	LexInvalidCharacter:     "Invalid character",
	LexUnterminatedString:   "Unterminated string",
	LexUnterminatedComment:  "Unterminated block comment",
	SynInfo:                 "Syntax information",
	SynUnexpectedToken:      "Unexpected token",
	SynMismatchedBraces:     "Mismatched braces",
	SynMissingStackCounts:   "Malformed stack counts",
	SynDuplicateDeclaration: "Duplicate declaration name",
	StyInfo:                 "Style information",
	StyOpcodePerLine:        "More than one instruction per line",
	StyNamingByRole:         "Name does not match inferred role",
	StyStackCounts:          "Missing takes/returns counts",
	StyIncludeNaming:        "Included library file lacks required prefix",
	StyAlignment:            "Indentation or stack-comment column mismatch",
	StyDocStructure:         "Malformed documentation block",
	StyDeclOrder:            "Declarations out of canonical order",
	StyTakesComment:         "Missing takes comment on first body line",
	StyFileDoc:              "File documentation block violation",
	StyUnreachedLabel:       "Label has no preceding referencing jump",
	StyUnresolvedLabel:      "Jump references an undefined label",
	StyHeaderWrap:           "Declaration header exceeds line width",
	FmtInfo:                 "Formatter information",
	FmtOverlappingFixes:     "Overlapping suggested fixes",
}

// ruleNames maps style codes to the stable rule identifiers used by the
// enabled_rules and severity_overrides configuration keys.
var ruleNames = map[Code]string{
	StyOpcodePerLine:   "opcode-per-line",
	StyNamingByRole:    "naming-by-role",
	StyStackCounts:     "stack-counts",
	StyIncludeNaming:   "include-naming",
	StyAlignment:       "alignment",
	StyDocStructure:    "doc-structure",
	StyDeclOrder:       "decl-order",
	StyTakesComment:    "takes-comment",
	StyFileDoc:         "file-doc",
	StyUnreachedLabel:  "unreached-label",
	StyUnresolvedLabel: "unresolved-label",
	StyHeaderWrap:      "header-wrap",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("STY%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("FMT%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

// RuleName returns the stable rule identifier for a style code, or "" if the
// code is not rule-driven (lex/parse/fmt codes have no toggle).
func (c Code) RuleName() string {
	return ruleNames[c]
}

// RuleByName resolves a rule identifier back to its code.
func RuleByName(name string) (Code, bool) {
	for c, n := range ruleNames {
		if n == name {
			return c, true
		}
	}
	return UnknownCode, false
}

// RuleNames returns every known rule identifier.
func RuleNames() []string {
	out := make([]string, 0, len(ruleNames))
	for _, n := range ruleNames {
		out = append(out, n)
	}
	return out
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
