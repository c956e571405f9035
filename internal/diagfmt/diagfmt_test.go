package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"hufflint/internal/diag"
	"hufflint/internal/diagfmt"
	"hufflint/internal/source"
)

func sampleBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("Token.huff", []byte("#define constant THING = 0x00\n"))

	bag := diag.NewBag(16)
	nameSpan := source.Span{File: id, Start: 17, End: 22} // "THING"
	bag.Add(diag.NewWarning(diag.StyNamingByRole, nameSpan,
		"constant THING is used as a storage slot; rename to THING_SLOT").
		WithFix("rename", diag.TextEdit{Span: nameSpan, NewText: "THING_SLOT", OldText: "THING"}))
	return bag, fs
}

func TestPrettyPlain(t *testing.T) {
	bag, fs := sampleBag(t)
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{ShowFixes: true})
	out := buf.String()

	if !strings.HasPrefix(out, "Token.huff:1:18: WARNING STY3002: ") {
		t.Errorf("heading = %q", out)
	}
	if !strings.Contains(out, "#define constant THING = 0x00") {
		t.Errorf("missing context line: %q", out)
	}
	if !strings.Contains(out, "^~~~~") {
		t.Errorf("missing underline: %q", out)
	}
	if !strings.Contains(out, "fix: rename (1 edits)") {
		t.Errorf("missing fix line: %q", out)
	}
}

func TestPrettyUnderlinePosition(t *testing.T) {
	bag, fs := sampleBag(t)
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{})
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("output = %q", buf.String())
	}
	// Column 18, plus the two-space gutter.
	if lines[2] != "  "+strings.Repeat(" ", 17)+"^~~~~" {
		t.Errorf("underline line = %q", lines[2])
	}
}

func TestJSONShape(t *testing.T) {
	bag, fs := sampleBag(t)
	var buf bytes.Buffer
	err := diagfmt.JSON(&buf, bag, fs, diagfmt.JSONOpts{
		IncludePositions: true,
		IncludeFixes:     true,
	})
	if err != nil {
		t.Fatal(err)
	}

	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("out = %+v", out)
	}
	d := out.Diagnostics[0]
	if d.Code != "STY3002" || d.Rule != "naming-by-role" || d.Severity != "WARNING" {
		t.Errorf("diag = %+v", d)
	}
	if d.Location.File != "Token.huff" || d.Location.StartLine != 1 || d.Location.StartCol != 18 {
		t.Errorf("location = %+v", d.Location)
	}
	if len(d.Fixes) != 1 || d.Fixes[0].Edits[0].NewText != "THING_SLOT" {
		t.Errorf("fixes = %+v", d.Fixes)
	}
}

func TestJSONMaxTruncatesListNotCount(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.huff", []byte("x\n"))
	bag := diag.NewBag(16)
	for i := 0; i < 3; i++ {
		bag.Add(diag.NewWarning(diag.StyAlignment, source.Span{File: id}, "layout"))
	}

	var buf bytes.Buffer
	if err := diagfmt.JSON(&buf, bag, fs, diagfmt.JSONOpts{Max: 2}); err != nil {
		t.Fatal(err)
	}
	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 3 || len(out.Diagnostics) != 2 {
		t.Errorf("count=%d listed=%d", out.Count, len(out.Diagnostics))
	}
}
