// Package align derives canonical line layout for a scope: the indentation
// prefix of every code line and the single scope-wide column at which stack
// comments start. It is a pure derivation; comparing observed against
// derived layout is the rule engine's job.
package align

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"hufflint/internal/ast"
	"hufflint/internal/nest"
	"hufflint/internal/source"
)

// NoCommentColumn marks a scope with no stack-carrying lines.
const NoCommentColumn = -1

// Line is the derived layout of one code line.
type Line struct {
	// Indent is the canonical number of leading spaces.
	Indent int
	// Width is the rendered width of indent plus code, comment excluded.
	// Zero for comment-only lines.
	Width int
}

// Result is the derived layout of one scope.
type Result struct {
	Lines []Line // parallel to Scope.Lines
	// CommentCol is the 0-based column every stack comment of the scope
	// starts at, or NoCommentColumn.
	CommentCol int
}

// Compute lays out a scope under the given base indent unit. Pass one
// renders every line's code-only width at its canonical indentation; pass
// two takes the scope-wide maximum over stack-carrying lines and rounds it
// up to the next tab stop with at least one space of gap. The column is
// deliberately shared across nesting depths.
func Compute(f *source.File, scope *ast.Scope, depths nest.Result, baseIndent int) Result {
	res := Result{CommentCol: NoCommentColumn}
	if scope == nil {
		return res
	}
	res.Lines = make([]Line, len(scope.Lines))

	maxWidth := 0
	carrying := false
	for i, line := range scope.Lines {
		indent := baseIndent * int(1+depths.Depth(i))
		res.Lines[i] = Line{Indent: indent}
		if line.IsCommentOnly() {
			continue
		}
		width := indent + runewidth.StringWidth(codeText(f, line))
		res.Lines[i].Width = width

		if carriesStackComment(line) {
			carrying = true
			if width > maxWidth {
				maxWidth = width
			}
		}
	}

	if carrying {
		res.CommentCol = nextTabStop(maxWidth+1, baseIndent)
	}
	return res
}

// IndentPrefix returns the canonical leading whitespace of line i.
func (r Result) IndentPrefix(i int) string {
	if i < 0 || i >= len(r.Lines) {
		return ""
	}
	return strings.Repeat(" ", r.Lines[i].Indent)
}

// carriesStackComment reports whether a line takes part in column
// derivation: it already has a stack-effect comment, or it is an
// instruction line and therefore expected to document its stack.
func carriesStackComment(line *ast.CodeLine) bool {
	if line.Comment != nil && line.Comment.IsStackEffect {
		return true
	}
	return len(line.Tokens) > 0 && !line.IsLabelOnly()
}

// codeText is the source text from the first to the last code token,
// author spacing between tokens preserved.
func codeText(f *source.File, line *ast.CodeLine) string {
	toks := line.Tokens
	if len(toks) == 0 {
		return ""
	}
	start := toks[0].Span.Start
	end := toks[len(toks)-1].Span.End
	if int(end) > len(f.Content) || start > end {
		return ""
	}
	return string(f.Content[start:end])
}

func nextTabStop(min, unit int) int {
	if unit <= 0 {
		return min
	}
	if rem := min % unit; rem != 0 {
		return min + unit - rem
	}
	return min
}
