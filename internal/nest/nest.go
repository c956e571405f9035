package nest

import (
	"fmt"

	"hufflint/internal/ast"
	"hufflint/internal/diag"
)

// Result holds the inferred nesting depth of every line in one scope,
// parallel to Scope.Lines. The scope itself is never mutated.
type Result struct {
	Depths []uint32
}

// Depth returns the depth of line i, or 0 when i is out of range.
func (r Result) Depth(i int) uint32 {
	if i < 0 || i >= len(r.Depths) {
		return 0
	}
	return r.Depths[i]
}

// Compute infers implicit nesting from jump/label structure. The dialect
// has no block syntax: a conditional jump opens an implicit block whose
// body is the code following the target label, one level deeper than the
// jump itself. The block lasts until the next label changes the depth.
//
// Unresolved jump targets and labels nobody jumps to are soft findings:
// they are reported and depth computation continues from the last known
// state.
func Compute(scope *ast.Scope, reporter diag.Reporter) Result {
	res := Result{Depths: make([]uint32, len(scope.Lines))}
	if scope == nil || len(scope.Lines) == 0 {
		return res
	}

	// pending хранит глубину, назначенную метке первым условным
	// переходом на неё; повторные переходы её не меняют.
	pending := make(map[string]uint32)
	depth := uint32(0)

	for i := 0; i < len(scope.Lines); i++ {
		line := scope.Lines[i]

		if line.LabelDef != "" {
			// Consecutive label definitions with no code between them
			// form one group and share a single depth.
			group := []int{i}
			for line.IsLabelOnly() && i+1 < len(scope.Lines) && scope.Lines[i+1].LabelDef != "" {
				i++
				line = scope.Lines[i]
				group = append(group, i)
			}
			depth = resolveGroupDepth(scope, group, pending, reporter)
			for _, j := range group {
				res.Depths[j] = depth
			}
			// A labelled line may carry code after the colon; that code
			// already sits at the new depth, so nothing else to do.
			continue
		}

		res.Depths[i] = depth

		if line.HasJump() {
			checkTargets(scope, line, reporter)
		}
		if line.HasConditionalJump() {
			for _, ref := range line.LabelRefs {
				if _, seen := pending[ref.Name]; !seen && scope.DefinesLabel(ref.Name) {
					pending[ref.Name] = depth + 1
				}
			}
		}
	}
	return res
}

// resolveGroupDepth picks the depth of a run of adjacent label definitions:
// the deepest pending jump that targets any label in the group. Labels no
// prior jump references are flagged and, when alone, recover at depth 0.
func resolveGroupDepth(scope *ast.Scope, group []int, pending map[string]uint32, reporter diag.Reporter) uint32 {
	best := uint32(0)
	found := false
	for _, j := range group {
		name := scope.Lines[j].LabelDef
		if d, ok := pending[name]; ok {
			delete(pending, name)
			if d > best {
				best = d
			}
			found = true
		}
	}
	if found {
		return best
	}
	for _, j := range group {
		line := scope.Lines[j]
		diag.ReportWarning(reporter, diag.StyUnreachedLabel, line.Span,
			fmt.Sprintf("label %q is not targeted by any preceding jump in this scope", line.LabelDef)).
			Emit()
	}
	return 0
}

// checkTargets reports jump operands that name no label of the scope.
func checkTargets(scope *ast.Scope, line *ast.CodeLine, reporter diag.Reporter) {
	for _, ref := range line.LabelRefs {
		if scope.DefinesLabel(ref.Name) {
			continue
		}
		diag.ReportWarning(reporter, diag.StyUnresolvedLabel, ref.Span,
			fmt.Sprintf("jump target %q is not defined in this scope", ref.Name)).
			Emit()
	}
}
