package lexer

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var ignoreMetadata = cmpopts.IgnoreFields(Token{}, "Metadata")

func tok(kind TokenKind, value string) Token {
	return Token{Kind: kind, Value: value}
}

func mustTokenize(t *testing.T, src string) []Token {
	t.Helper()
	tokens, err := Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize(%q) error: %v", src, err)
	}
	return tokens
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []Token
	}{
		{
			name: "addition",
			src:  "1 + 2",
			want: []Token{tok(NUMBER, "1"), tok(OPERATOR, "+"), tok(NUMBER, "2")},
		},
		{
			name: "decimal and trailing dot",
			src:  "3.25 5.",
			want: []Token{tok(NUMBER, "3.25"), tok(NUMBER, "5.0")},
		},
		{
			name: "dotted runs stay one token",
			src:  "1.2.3",
			want: []Token{tok(NUMBER, "1.2.3")},
		},
		{
			name: "strings with both quotes",
			src:  `"hi there" 'it''s'`,
			want: []Token{tok(STRING, "hi there"), tok(STRING, "it"), tok(STRING, "s")},
		},
		{
			name: "no escape processing",
			src:  `"a\nb"`,
			want: []Token{tok(STRING, `a\nb`)},
		},
		{
			name: "keywords and booleans",
			src:  "if true false iffy",
			want: []Token{tok(KEYWORD, "if"), tok(BOOL, "true"), tok(BOOL, "false"), tok(IDENT, "iffy")},
		},
		{
			name: "identifiers stop at digits",
			src:  "ab1",
			want: []Token{tok(IDENT, "ab"), tok(NUMBER, "1")},
		},
		{
			name: "underscore identifiers",
			src:  "_my_var",
			want: []Token{tok(IDENT, "_my_var")},
		},
		{
			name: "assignment versus equality",
			src:  "x = y == z",
			want: []Token{tok(IDENT, "x"), tok(OPERATOR, "="), tok(IDENT, "y"), tok(COMPARATOR, "=="), tok(IDENT, "z")},
		},
		{
			name: "comparators",
			src:  "< <= > >= ! !=",
			want: []Token{
				tok(COMPARATOR, "<"), tok(COMPARATOR, "<="),
				tok(COMPARATOR, ">"), tok(COMPARATOR, ">="),
				tok(COMPARATOR, "!"), tok(COMPARATOR, "!="),
			},
		},
		{
			name: "punctuation",
			src:  "f(a, b); { } - * /",
			want: []Token{
				tok(IDENT, "f"), tok(PAREN, "("), tok(IDENT, "a"), tok(COMMA, ","),
				tok(IDENT, "b"), tok(PAREN, ")"), tok(SEMICOLON, ";"),
				tok(BRACKET, "{"), tok(BRACKET, "}"),
				tok(OPERATOR, "-"), tok(OPERATOR, "*"), tok(OPERATOR, "/"),
			},
		},
		{
			name: "empty source",
			src:  "",
			want: []Token{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustTokenize(t, tt.src)
			if diff := cmp.Diff(tt.want, got, ignoreMetadata); diff != "" {
				t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCommentsAndWhitespaceNeverTokens(t *testing.T) {
	src := "# leading comment\nx = 1 # trailing comment\n\t  \r\n# last line without newline"
	got := mustTokenize(t, src)
	want := []Token{tok(IDENT, "x"), tok(OPERATOR, "="), tok(NUMBER, "1")}
	if diff := cmp.Diff(want, got, ignoreMetadata); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestUnicodeWhitespace(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []Token
	}{
		{
			name: "byte order mark",
			src:  "\uFEFFx = 1",
			want: []Token{tok(IDENT, "x"), tok(OPERATOR, "="), tok(NUMBER, "1")},
		},
		{
			name: "comment after byte order mark",
			src:  "\uFEFF# header\nx",
			want: []Token{tok(IDENT, "x")},
		},
		{
			name: "space separators",
			src:  "1\u00a0+\u3000 2\u2028",
			want: []Token{tok(NUMBER, "1"), tok(OPERATOR, "+"), tok(NUMBER, "2")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustTokenize(t, tt.src)
			if diff := cmp.Diff(tt.want, got, ignoreMetadata); diff != "" {
				t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNextLineIsNotWhitespace(t *testing.T) {
	_, err := Tokenize("x\u0085= 1")
	var unknown *UnknownCharacterError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownCharacterError, got %v", err)
	}
	if unknown.Char != '\u0085' || unknown.Line != 1 || unknown.Column != 2 {
		t.Fatalf("unexpected error details: %+v", unknown)
	}
}

func TestHashNotAfterWhitespaceIsUnknown(t *testing.T) {
	_, err := Tokenize("x# not a comment")
	var unknown *UnknownCharacterError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownCharacterError, got %v", err)
	}
	if unknown.Char != '#' || unknown.Line != 1 || unknown.Column != 2 {
		t.Fatalf("unexpected error details: %+v", unknown)
	}
}

func TestUnknownCharacter(t *testing.T) {
	_, err := Tokenize("a = 1\nb = 2 % 3")
	var unknown *UnknownCharacterError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownCharacterError, got %v", err)
	}
	if unknown.Char != '%' {
		t.Fatalf("char = %q, want %%", unknown.Char)
	}
	if unknown.Line != 2 || unknown.Column != 7 {
		t.Fatalf("position = %d:%d, want 2:7", unknown.Line, unknown.Column)
	}
	if got := err.Error(); got != "2:7: unknown character: %" {
		t.Fatalf("message = %q", got)
	}
}

func TestUnknownMultibyteCharacter(t *testing.T) {
	_, err := Tokenize("x = 1 → 2")
	var unknown *UnknownCharacterError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownCharacterError, got %v", err)
	}
	if unknown.Char != '→' {
		t.Fatalf("char = %q, want →", unknown.Char)
	}
}

func TestUnterminatedString(t *testing.T) {
	for _, src := range []string{`"abc`, `'abc"`, `x = "`} {
		_, err := Tokenize(src)
		var unterminated *UnterminatedStringError
		if !errors.As(err, &unterminated) {
			t.Fatalf("Tokenize(%q): expected UnterminatedStringError, got %v", src, err)
		}
	}
}

func TestTokenMetadata(t *testing.T) {
	tokens := mustTokenize(t, "x = 'ab'\n  y <= 10.")
	want := []Metadata{
		{Line: 1, Column: 1, Length: 1},
		{Line: 1, Column: 3, Length: 1},
		{Line: 1, Column: 5, Length: 4},
		{Line: 2, Column: 3, Length: 1},
		{Line: 2, Column: 5, Length: 2},
		{Line: 2, Column: 8, Length: 3},
	}
	got := make([]Metadata, 0, len(tokens))
	for _, token := range tokens {
		got = append(got, token.Metadata)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("metadata mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenHelpers(t *testing.T) {
	trueTok := tok(BOOL, "true")
	falseTok := tok(BOOL, "false")
	if !trueTok.Bool() || falseTok.Bool() {
		t.Fatalf("Bool() mismatch")
	}
	if got := trueTok.String(); got != "boolean(true)" {
		t.Fatalf("String() = %q", got)
	}
	paren := tok(PAREN, "(")
	if !paren.Is(PAREN, "(") || paren.Is(PAREN, ")") {
		t.Fatalf("Is() mismatch")
	}
}

func TestTokenScanner(t *testing.T) {
	scanner := NewTokenScanner(mustTokenize(t, "a = 1"))
	if !scanner.HasTokens() {
		t.Fatalf("expected tokens")
	}
	if got := scanner.PeekNext(); got == nil || got.Value != "=" {
		t.Fatalf("PeekNext = %v", got)
	}
	for _, want := range []string{"a", "=", "1"} {
		if got := scanner.Read(); got == nil || got.Value != want {
			t.Fatalf("Read = %v, want %s", got, want)
		}
	}
	if scanner.HasTokens() || scanner.Peek() != nil || scanner.Read() != nil {
		t.Fatalf("scanner must be exhausted")
	}
}
