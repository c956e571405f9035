package lexer_test

import (
	"fmt"
	"testing"

	"hufflint/internal/diag"
	"hufflint/internal/lexer"
	"hufflint/internal/source"
	"hufflint/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

// Report реализует интерфейс diag.Reporter
func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note, fixes []diag.Fix) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
		Fixes:    fixes,
	})
}

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.huff", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{diagnostics: make([]diag.Diagnostic, 0)}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})

	return lx, reporter
}

// collectAllTokens собирает все токены до EOF или Invalid
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF || tok.Kind == token.Invalid {
			break
		}
	}
	return tokens
}

// expectTokens проверяет последовательность токенов
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	// убираем EOF из сравнения
	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v\nErrors: %v",
			len(expected), len(tokens), input, tokens, reporter.ErrorMessages())
	}

	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("Token %d: expected %v, got %v (text: %q)",
				i, expected[i], tok.Kind, tok.Text)
		}
	}
}

func TestDirectives(t *testing.T) {
	expectTokens(t, `#include "./HuffMath.huff"`, []token.Kind{
		token.HashInclude, token.StringLit,
	})
	expectTokens(t, `#define constant X = 0xff`, []token.Kind{
		token.HashDefine, token.KwConstant, token.Ident, token.Assign, token.HexLit,
	})
}

func TestMacroHeader(t *testing.T) {
	expectTokens(t, `#define macro ADD_TWO() = takes (2) returns (1) {}`, []token.Kind{
		token.HashDefine, token.KwMacro, token.Ident, token.LParen, token.RParen,
		token.Assign, token.KwTakes, token.LParen, token.IntLit, token.RParen,
		token.KwReturns, token.LParen, token.IntLit, token.RParen,
		token.LBrace, token.RBrace,
	})
}

func TestOpcodesAndLabels(t *testing.T) {
	input := "dup1\nerror_jump jumpi\nerror_jump:\n0x00 0x00 revert"
	expectTokens(t, input, []token.Kind{
		token.Opcode, token.Newline,
		token.Ident, token.Opcode, token.Newline,
		token.LabelDecl, token.Newline,
		token.HexLit, token.HexLit, token.Opcode,
	})
}

func TestLabelDeclText(t *testing.T) {
	lx, _ := makeTestLexer("finish:")
	tok := lx.Next()
	if tok.Kind != token.LabelDecl {
		t.Fatalf("Kind = %v", tok.Kind)
	}
	if tok.Text != "finish:" {
		t.Errorf("Text = %q, want %q", tok.Text, "finish:")
	}
}

func TestOpcodeNotLabel(t *testing.T) {
	// двоеточие после мнемоники не делает из неё метку
	expectTokens(t, "add:", []token.Kind{token.Opcode, token.Colon})
}

func TestComments(t *testing.T) {
	expectTokens(t, "// plain", []token.Kind{token.LineComment})
	expectTokens(t, "/// ## Title", []token.Kind{token.DocComment})
	expectTokens(t, "/// # File Title", []token.Kind{token.FileDocComment})
	expectTokens(t, "/* block */ add", []token.Kind{token.BlockComment, token.Opcode})
	expectTokens(t, "/* outer /* inner */ still */ add", []token.Kind{token.BlockComment, token.Opcode})
}

func TestStackCommentIsLineComment(t *testing.T) {
	lx, _ := makeTestLexer("dup1        // [a, a]")
	if tok := lx.Next(); tok.Kind != token.Opcode {
		t.Fatalf("first = %v", tok.Kind)
	}
	tok := lx.Next()
	if tok.Kind != token.LineComment {
		t.Fatalf("second = %v", tok.Kind)
	}
	if tok.Text != "// [a, a]" {
		t.Errorf("Text = %q", tok.Text)
	}
	// наблюдаемая колонка идёт из спана
	if tok.Span.Start != 12 {
		t.Errorf("Span.Start = %d, want 12", tok.Span.Start)
	}
}

func TestTemplateReference(t *testing.T) {
	expectTokens(t, "<error> jump", []token.Kind{
		token.Lt, token.Ident, token.Gt, token.Opcode,
	})
}

func TestConstantReference(t *testing.T) {
	expectTokens(t, "[OWNER_SLOT] sload", []token.Kind{
		token.LBracket, token.Ident, token.RBracket, token.Opcode,
	})
}

func TestUnterminatedString(t *testing.T) {
	lx, reporter := makeTestLexer("#include \"broken")
	tokens := collectAllTokens(lx)
	last := tokens[len(tokens)-1]
	if last.Kind != token.Invalid {
		t.Fatalf("last = %v, want Invalid", last.Kind)
	}
	if len(reporter.diagnostics) != 1 {
		t.Fatalf("diagnostics = %d", len(reporter.diagnostics))
	}
	d := reporter.diagnostics[0]
	if d.Code != diag.LexUnterminatedString || d.Severity != diag.SevFatal {
		t.Errorf("got %v / %v", d.Code, d.Severity)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	lx, reporter := makeTestLexer("/* never closed")
	collectAllTokens(lx)
	if len(reporter.diagnostics) != 1 || reporter.diagnostics[0].Code != diag.LexUnterminatedComment {
		t.Fatalf("diagnostics = %v", reporter.ErrorMessages())
	}
}

func TestInvalidCharacter(t *testing.T) {
	lx, reporter := makeTestLexer("add $ mul")
	collectAllTokens(lx)
	if len(reporter.diagnostics) != 1 || reporter.diagnostics[0].Code != diag.LexInvalidCharacter {
		t.Fatalf("diagnostics = %v", reporter.ErrorMessages())
	}
}

func TestTokenizeStopsAtFatal(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("bad.huff", []byte("add\n$"))
	_, err := lexer.Tokenize(fs.Get(fileID), lexer.Options{})
	if err == nil {
		t.Fatal("expected ErrUnanalyzable")
	}
}

func TestTokenizeCoversSpans(t *testing.T) {
	fs := source.NewFileSet()
	input := []byte("#define macro A() = takes (0) returns (0) {\n    add // [x]\n}\n")
	fileID := fs.AddVirtual("a.huff", input)
	tokens, err := lexer.Tokenize(fs.Get(fileID), lexer.Options{})
	if err != nil {
		t.Fatal(err)
	}
	// спаны монотонны и не пересекаются
	var prev uint32
	for _, tok := range tokens {
		if tok.Span.Start < prev {
			t.Fatalf("span went backwards at %v (%q)", tok.Span, tok.Text)
		}
		if tok.Span.End < tok.Span.Start {
			t.Fatalf("inverted span %v", tok.Span)
		}
		prev = tok.Span.End
	}
}
