package ast

import (
	"hufflint/internal/source"
	"hufflint/internal/token"
)

// Scope is the instruction body of one macro-shaped declaration. The body is
// a flat ordered line list; nesting is a derived result, not a tree (labels
// and jumps are the only control structure the dialect has).
type Scope struct {
	Owner *Decl
	Lines []*CodeLine
}

// CodeLine is one logical source line inside a Scope.
type CodeLine struct {
	LineNum uint32      // 1-based source line
	Span    source.Span // first to last code token, excluding the comment
	// Tokens holds the code tokens of the line, comment excluded. Empty for
	// comment-only lines.
	Tokens []token.Token
	// LabelDef is the label name if the line starts with 'name:'.
	LabelDef string
	// LabelRefs are bare identifiers pushed as jump destinations.
	LabelRefs []LabelRef
	// Comment is the trailing (or sole) comment of the line.
	Comment *StackComment
}

// LabelRef is a reference to a jump destination.
type LabelRef struct {
	Name string
	Span source.Span
}

// StackComment is a trailing line comment, possibly documenting operand
// stack contents.
type StackComment struct {
	Tok token.Token
	// Col is the observed 0-based start column of the comment.
	Col uint32
	// IsStackEffect is true when the comment body is a bracketed slot list.
	IsStackEffect bool
	// IsTakes is true when the comment carries the takes-marker.
	IsTakes bool
}

// IsCommentOnly reports whether the line holds no code tokens.
func (l *CodeLine) IsCommentOnly() bool {
	return len(l.Tokens) == 0 && l.LabelDef == ""
}

// IsLabelOnly reports whether the line is a bare label definition.
func (l *CodeLine) IsLabelOnly() bool {
	return l.LabelDef != "" && len(l.Tokens) == 1
}

// HasConditionalJump reports whether the line ends in 'jumpi'.
func (l *CodeLine) HasConditionalJump() bool {
	return l.lastOpcode() == "jumpi"
}

// HasJump reports whether the line ends in either jump form.
func (l *CodeLine) HasJump() bool {
	op := l.lastOpcode()
	return op == "jump" || op == "jumpi"
}

func (l *CodeLine) lastOpcode() string {
	for i := len(l.Tokens) - 1; i >= 0; i-- {
		if l.Tokens[i].Kind == token.Opcode {
			return l.Tokens[i].Text
		}
		if !l.Tokens[i].IsComment() {
			break
		}
	}
	return ""
}

// Labels collects label definitions of the scope in line order.
func (s *Scope) Labels() []string {
	var out []string
	for _, line := range s.Lines {
		if line.LabelDef != "" {
			out = append(out, line.LabelDef)
		}
	}
	return out
}

// DefinesLabel reports whether any line defines the given label.
func (s *Scope) DefinesLabel(name string) bool {
	for _, line := range s.Lines {
		if line.LabelDef == name {
			return true
		}
	}
	return false
}
