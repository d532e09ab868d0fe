package lexer_test

import (
	"testing"

	"rawfix/internal/diag"
	"rawfix/internal/lexer"
	"rawfix/internal/source"
	"rawfix/internal/token"
)

// testReporter collects every diagnostic the lexer emits.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

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

func (r *testReporter) hasCode(code diag.Code) bool {
	for _, d := range r.diagnostics {
		if d.Code == code {
			return true
		}
	}
	return false
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter, *source.File) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.rs", []byte(input))
	file := fs.Get(fileID)
	reporter := &testReporter{}
	return lexer.New(file, lexer.Options{Reporter: reporter}), reporter, file
}

func collectKinds(lx *lexer.Lexer) []token.Kind {
	var kinds []token.Kind
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return kinds
		}
		kinds = append(kinds, tok.Kind)
	}
}

func expectKinds(t *testing.T, input string, want []token.Kind) {
	t.Helper()
	lx, _, _ := makeTestLexer(input)
	got := collectKinds(lx)
	if len(got) != len(want) {
		t.Fatalf("input %q: got %d tokens %v, want %d %v", input, len(got), got, len(want), want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("input %q: token %d is %s, want %s", input, i, got[i], want[i])
		}
	}
}

func TestTokenKinds(t *testing.T) {
	expectKinds(t, `let s = "hi";`, []token.Kind{
		token.Ident, token.Ident, token.Punct, token.StringLit, token.Punct,
	})
	expectKinds(t, `r#"raw"#`, []token.Kind{token.RawStringLit})
	expectKinds(t, `42 3.14 'x' name_1`, []token.Kind{
		token.IntLit, token.FloatLit, token.CharLit, token.Ident,
	})
	expectKinds(t, `r 'a T>`, []token.Kind{
		token.Ident, token.Punct, token.Ident, token.Ident, token.Punct,
	})
}

func TestStringLiterals(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
		text  string
	}{
		{`"plain"`, token.StringLit, `"plain"`},
		{`"esc \" quote"`, token.StringLit, `"esc \" quote"`},
		{"\"multi\nline\"", token.StringLit, "\"multi\nline\""},
		{`r"raw"`, token.RawStringLit, `r"raw"`},
		{`r#"one"#`, token.RawStringLit, `r#"one"#`},
		{`r##"has "# inside"##`, token.RawStringLit, `r##"has "# inside"##`},
		{`r#"trailing"#;`, token.RawStringLit, `r#"trailing"#`},
	}
	for _, tt := range tests {
		lx, reporter, _ := makeTestLexer(tt.input)
		tok := lx.Next()
		if tok.Kind != tt.kind {
			t.Fatalf("input %q: kind = %s, want %s (diags: %v)", tt.input, tok.Kind, tt.kind, reporter.diagnostics)
		}
		if tok.Text != tt.text {
			t.Fatalf("input %q: text = %q, want %q", tt.input, tok.Text, tt.text)
		}
	}
}

func TestUnterminatedLiterals(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
	}{
		{`"never closed`, diag.LexUnterminatedString},
		{`r#"never closed"`, diag.LexUnterminatedRawString},
		{`'\n`, diag.LexUnterminatedChar},
	}
	for _, tt := range tests {
		lx, reporter, _ := makeTestLexer(tt.input)
		tok := lx.Next()
		if tok.Kind != token.Invalid {
			t.Fatalf("input %q: kind = %s, want Invalid", tt.input, tok.Kind)
		}
		if !reporter.hasCode(tt.code) {
			t.Fatalf("input %q: expected %s, got %v", tt.input, tt.code.ID(), reporter.diagnostics)
		}
	}
}

func TestRawFenceClosesExactly(t *testing.T) {
	// The closer takes exactly fence hashes; anything beyond is separate.
	lx, _, _ := makeTestLexer(`r#"x"## y`)
	tok := lx.Next()
	if tok.Kind != token.RawStringLit || tok.Text != `r#"x"#` {
		t.Fatalf("got %s %q, want RawStringLit %q", tok.Kind, tok.Text, `r#"x"#`)
	}
	next := lx.Next()
	if next.Kind != token.Punct || next.Text != "#" {
		t.Fatalf("after closer: got %s %q, want Punct %q", next.Kind, next.Text, "#")
	}
}

func TestLeadingTrivia(t *testing.T) {
	input := "// comment\n/* block */ \"s\""
	lx, _, _ := makeTestLexer(input)
	tok := lx.Next()
	if tok.Kind != token.StringLit {
		t.Fatalf("kind = %s, want StringLit", tok.Kind)
	}
	kinds := make([]token.TriviaKind, 0, len(tok.Leading))
	for _, tr := range tok.Leading {
		kinds = append(kinds, tr.Kind)
	}
	want := []token.TriviaKind{
		token.TriviaLineComment, token.TriviaNewline, token.TriviaBlockComment, token.TriviaSpace,
	}
	if len(kinds) != len(want) {
		t.Fatalf("leading trivia = %v, want %v", kinds, want)
	}
	for i := range kinds {
		if kinds[i] != want[i] {
			t.Fatalf("leading trivia = %v, want %v", kinds, want)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _, _ := makeTestLexer(`a b`)
	first := lx.Peek()
	got := lx.Next()
	if got.Kind != first.Kind || got.Span != first.Span || got.Text != first.Text {
		t.Fatalf("Peek then Next disagree: %v vs %v", first, got)
	}
	if got := lx.Next(); got.Text != "b" {
		t.Fatalf("second token = %q, want %q", got.Text, "b")
	}
}

func TestTokenAt(t *testing.T) {
	_, _, file := makeTestLexer(`let s = "hi";`)

	tok, ok := lexer.TokenAt(file, 9)
	if !ok || tok.Kind != token.StringLit {
		t.Fatalf("TokenAt(9) = %v, %v; want string literal", tok, ok)
	}
	// End position is inclusive.
	tok, ok = lexer.TokenAt(file, tok.Span.End)
	if !ok || tok.Kind != token.StringLit {
		t.Fatalf("TokenAt(end) = %v, %v; want string literal", tok, ok)
	}
	if _, ok := lexer.TokenAt(file, 100); ok {
		t.Fatalf("TokenAt past EOF should miss")
	}
}

func TestTokenOfKindAt(t *testing.T) {
	// "=" and the literal share no boundary here, but ident and "=" do the
	// filtering work: the kind filter skips tokens that merely touch.
	_, _, file := makeTestLexer(`x="a"`)

	tok, ok := lexer.TokenOfKindAt(file, 2, token.StringLit)
	if !ok || tok.Text != `"a"` {
		t.Fatalf("TokenOfKindAt(2, StringLit) = %v, %v", tok, ok)
	}
	// Offset 1 touches both the ident end and the punct; asking for the
	// punct kind resolves the tie.
	tok, ok = lexer.TokenOfKindAt(file, 1, token.Punct)
	if !ok || tok.Text != "=" {
		t.Fatalf("TokenOfKindAt(1, Punct) = %v, %v", tok, ok)
	}
	if _, ok := lexer.TokenOfKindAt(file, 0, token.RawStringLit); ok {
		t.Fatalf("no raw string in input, lookup must miss")
	}
}
