package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Newline marks one or more consecutive line breaks.
	Newline

	// HashInclude represents the '#include' directive keyword.
	HashInclude
	// HashDefine represents the '#define' directive keyword.
	HashDefine

	// KwMacro represents the 'macro' keyword.
	KwMacro // macro
	// KwFn represents the 'fn' keyword (macro with unique labels per expansion).
	KwFn // fn
	// KwFunction represents the 'function' keyword (ABI signature).
	KwFunction // function
	// KwConstant represents the 'constant' keyword.
	KwConstant // constant
	// KwTakes represents the 'takes' keyword.
	KwTakes // takes
	// KwReturns represents the 'returns' keyword.
	KwReturns // returns

	// Ident represents an identifier token.
	Ident
	// Opcode represents a recognized machine instruction mnemonic.
	Opcode
	// LabelDecl represents a label definition ('name' immediately followed by ':').
	LabelDecl

	// HexLit represents a hexadecimal literal (0x-prefixed push value).
	HexLit
	// IntLit represents a decimal integer literal.
	IntLit
	// StringLit represents a double-quoted string literal.
	StringLit

	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LBracket represents '[' (constant reference open).
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// Lt represents '<' (template reference open).
	Lt // <
	// Gt represents '>'.
	Gt // >
	// Comma represents ','.
	Comma // ,
	// Assign represents '='.
	Assign // =
	// Colon represents a bare ':'.
	Colon // :

	// LineComment represents a '//' comment.
	LineComment
	// BlockComment represents a '/* */' comment.
	BlockComment
	// DocComment represents a '///' documentation comment line.
	DocComment
	// FileDocComment represents a '///' doc line opening an H1 file title.
	FileDocComment
)

var kindNames = map[Kind]string{
	Invalid:        "Invalid",
	EOF:            "EOF",
	Newline:        "Newline",
	HashInclude:    "HashInclude",
	HashDefine:     "HashDefine",
	KwMacro:        "KwMacro",
	KwFn:           "KwFn",
	KwFunction:     "KwFunction",
	KwConstant:     "KwConstant",
	KwTakes:        "KwTakes",
	KwReturns:      "KwReturns",
	Ident:          "Ident",
	Opcode:         "Opcode",
	LabelDecl:      "LabelDecl",
	HexLit:         "HexLit",
	IntLit:         "IntLit",
	StringLit:      "StringLit",
	LParen:         "LParen",
	RParen:         "RParen",
	LBrace:         "LBrace",
	RBrace:         "RBrace",
	LBracket:       "LBracket",
	RBracket:       "RBracket",
	Lt:             "Lt",
	Gt:             "Gt",
	Comma:          "Comma",
	Assign:         "Assign",
	Colon:          "Colon",
	LineComment:    "LineComment",
	BlockComment:   "BlockComment",
	DocComment:     "DocComment",
	FileDocComment: "FileDocComment",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(?)"
}
