package nest_test

import (
	"testing"

	"hufflint/internal/ast"
	"hufflint/internal/diag"
	"hufflint/internal/lexer"
	"hufflint/internal/nest"
	"hufflint/internal/parser"
	"hufflint/internal/source"
)

func computeScope(t *testing.T, body string) (*ast.Scope, nest.Result, *diag.Bag) {
	t.Helper()
	input := "#define macro M() = takes (0) returns (0) {\n" + body + "\n}"
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.huff", []byte(input))
	bag := diag.NewBag(64)
	reporter := diag.BagReporter{Bag: bag}

	toks, err := lexer.Tokenize(fs.Get(fileID), lexer.Options{Reporter: reporter})
	if err != nil {
		t.Fatalf("lexing failed: %v", err)
	}
	file, err := parser.ParseFile(fs, fileID, toks, parser.Options{Reporter: reporter})
	if err != nil {
		t.Fatalf("parsing failed: %v", err)
	}
	scope := file.Decls[0].Body
	return scope, nest.Compute(scope, reporter), bag
}

func expectDepths(t *testing.T, res nest.Result, want []uint32) {
	t.Helper()
	if len(res.Depths) != len(want) {
		t.Fatalf("got %d lines, want %d (%v)", len(res.Depths), len(want), res.Depths)
	}
	for i, d := range want {
		if res.Depths[i] != d {
			t.Errorf("line %d depth = %d, want %d (all: %v)", i, res.Depths[i], d, res.Depths)
		}
	}
}

func TestFlatBodyStaysAtDepthZero(t *testing.T) {
	_, res, bag := computeScope(t, "    0x01\n    0x02\n    add")
	expectDepths(t, res, []uint32{0, 0, 0})
	if bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", bag.Items())
	}
}

func TestConditionalJumpOpensBlock(t *testing.T) {
	body := `    dup1
    done jumpi
    0x01
done:
    stop`
	_, res, bag := computeScope(t, body)
	expectDepths(t, res, []uint32{0, 0, 0, 1, 1})
	if bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", bag.Items())
	}
}

func TestSiblingThenNestedLabels(t *testing.T) {
	body := `    first jumpi
    second jumpi
first:
    0x01
second:
    inner jumpi
inner:
    stop`
	_, res, _ := computeScope(t, body)
	expectDepths(t, res, []uint32{0, 0, 1, 1, 1, 1, 2, 2})
}

func TestAdjacentLabelsShareDeepestJump(t *testing.T) {
	body := `    a jumpi
a:
    b jumpi
b:
c:
    stop`
	_, res, bag := computeScope(t, body)
	// b is pending at depth 2; c has no jump of its own but joins b's
	// group and shares its depth.
	expectDepths(t, res, []uint32{0, 1, 1, 2, 2, 2})
	if bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", bag.Items())
	}
}

func TestFirstJumpWins(t *testing.T) {
	body := `    tgt jumpi
    dup1
    tgt jumpi
tgt:
    stop`
	_, res, _ := computeScope(t, body)
	expectDepths(t, res, []uint32{0, 0, 0, 1, 1})
}

func TestUnreachedLabelRecoversAtZero(t *testing.T) {
	body := `    dup1
orphan:
    stop`
	_, res, bag := computeScope(t, body)
	expectDepths(t, res, []uint32{0, 0, 0})
	if bag.Len() != 1 || bag.Items()[0].Code != diag.StyUnreachedLabel {
		t.Fatalf("diagnostics = %v", bag.Items())
	}
}

func TestUnresolvedJumpTarget(t *testing.T) {
	body := `    missing jumpi
    stop`
	_, res, bag := computeScope(t, body)
	expectDepths(t, res, []uint32{0, 0})
	if bag.Len() != 1 || bag.Items()[0].Code != diag.StyUnresolvedLabel {
		t.Fatalf("diagnostics = %v", bag.Items())
	}
}

func TestUnconditionalJumpDoesNotNest(t *testing.T) {
	body := `    next jump
next:
    stop`
	_, res, bag := computeScope(t, body)
	expectDepths(t, res, []uint32{0, 0, 0})
	// next is only reached by an unconditional jump, which opens no
	// implicit block, so the label counts as unreached.
	if bag.Len() != 1 || bag.Items()[0].Code != diag.StyUnreachedLabel {
		t.Fatalf("diagnostics = %v", bag.Items())
	}
}

func TestDepthChangesOnlyAtLabels(t *testing.T) {
	body := `    exit jumpi
    0x01
    0x02
exit:
    0x03
    stop`
	scope, res, _ := computeScope(t, body)
	for i := 1; i < len(scope.Lines); i++ {
		if scope.Lines[i].LabelDef == "" && res.Depths[i] != res.Depths[i-1] {
			t.Errorf("depth changed at non-label line %d: %d -> %d", i, res.Depths[i-1], res.Depths[i])
		}
	}
}
