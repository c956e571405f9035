package align_test

import (
	"testing"

	"hufflint/internal/align"
	"hufflint/internal/ast"
	"hufflint/internal/diag"
	"hufflint/internal/lexer"
	"hufflint/internal/nest"
	"hufflint/internal/parser"
	"hufflint/internal/source"
)

func layoutScope(t *testing.T, body string) (*ast.Scope, align.Result) {
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
	depths := nest.Compute(scope, reporter)
	return scope, align.Compute(fs.Get(fileID), scope, depths, 4)
}

func TestFlatIndentation(t *testing.T) {
	_, res := layoutScope(t, "dup1\n        swap1")
	// Canonical indent ignores what the author wrote.
	for i, want := range []int{4, 4} {
		if res.Lines[i].Indent != want {
			t.Errorf("line %d indent = %d, want %d", i, res.Lines[i].Indent, want)
		}
	}
}

func TestNestedIndentation(t *testing.T) {
	body := `    done jumpi
    0x01
done:
    stop`
	_, res := layoutScope(t, body)
	for i, want := range []int{4, 4, 8, 8} {
		if res.Lines[i].Indent != want {
			t.Errorf("line %d indent = %d, want %d", i, res.Lines[i].Indent, want)
		}
	}
}

func TestCommentColumnRoundsToTabStop(t *testing.T) {
	body := `    dup1  // [a, a]
    swap1 // [a, a]`
	_, res := layoutScope(t, body)
	// Widths are 8 and 9; 9+1 rounds up to 12.
	if res.Lines[0].Width != 8 || res.Lines[1].Width != 9 {
		t.Fatalf("widths = %d, %d", res.Lines[0].Width, res.Lines[1].Width)
	}
	if res.CommentCol != 12 {
		t.Errorf("CommentCol = %d, want 12", res.CommentCol)
	}
}

func TestCommentColumnKeepsExactTabStop(t *testing.T) {
	// Longest width is 11 ("calldataload" is 12... use 7-char opcode):
	// indent 4 + "mulmod" = 10, plus gap = 11, rounds to 12.
	_, res := layoutScope(t, "    mulmod // [x]")
	if res.Lines[0].Width != 10 {
		t.Fatalf("width = %d", res.Lines[0].Width)
	}
	if res.CommentCol != 12 {
		t.Errorf("CommentCol = %d, want 12", res.CommentCol)
	}
}

func TestCommentColumnIsScopeGlobal(t *testing.T) {
	body := `    deep jumpi  // [flag]
deep:
    calldataload    // [x]`
	_, res := layoutScope(t, body)
	// The nested line is the longest: indent 8 + len("calldataload") = 20,
	// so every comment in the scope lands at 24.
	if res.CommentCol != 24 {
		t.Errorf("CommentCol = %d, want 24", res.CommentCol)
	}
}

func TestNoStackCarryingLines(t *testing.T) {
	_, res := layoutScope(t, "    // just a note")
	if res.CommentCol != align.NoCommentColumn {
		t.Errorf("CommentCol = %d, want none", res.CommentCol)
	}
	if res.Lines[0].Indent != 4 {
		t.Errorf("comment-only indent = %d, want 4", res.Lines[0].Indent)
	}
}

func TestAuthorSpacingInsideLinePreserved(t *testing.T) {
	_, res := layoutScope(t, "    0x00   0x00 revert")
	// Width counts the author's inner spacing verbatim.
	if res.Lines[0].Width != 4+len("0x00   0x00 revert") {
		t.Errorf("width = %d", res.Lines[0].Width)
	}
}

func TestIndentPrefix(t *testing.T) {
	_, res := layoutScope(t, "    stop")
	if got := res.IndentPrefix(0); got != "    " {
		t.Errorf("prefix = %q", got)
	}
	if got := res.IndentPrefix(99); got != "" {
		t.Errorf("out-of-range prefix = %q", got)
	}
}
