package lexer

import (
	"testing"

	"github.com/lilith-lang/lilith/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `(def {double} (\ {x} {* x 2})) ; shorthand
(double -5)
{3.14 #t #f "a\nb"}
(<= 1 2)`

	tests := []struct {
		expectedType    token.TokenType
		expectedLiteral string
	}{
		{token.LPAREN, "("},
		{token.SYMBOL, "def"},
		{token.LBRACE, "{"},
		{token.SYMBOL, "double"},
		{token.RBRACE, "}"},
		{token.LPAREN, "("},
		{token.SYMBOL, "\\"},
		{token.LBRACE, "{"},
		{token.SYMBOL, "x"},
		{token.RBRACE, "}"},
		{token.LBRACE, "{"},
		{token.SYMBOL, "*"},
		{token.SYMBOL, "x"},
		{token.INT, "2"},
		{token.RBRACE, "}"},
		{token.RPAREN, ")"},
		{token.RPAREN, ")"},
		{token.LPAREN, "("},
		{token.SYMBOL, "double"},
		{token.INT, "-5"},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.FLOAT, "3.14"},
		{token.BOOL, "#t"},
		{token.BOOL, "#f"},
		{token.STRING, "a\nb"},
		{token.RBRACE, "}"},
		{token.LPAREN, "("},
		{token.SYMBOL, "<="},
		{token.INT, "1"},
		{token.INT, "2"},
		{token.RPAREN, ")"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - wrong token type. expected=%q, got=%q (%q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - wrong literal. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestSymbolRunes(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"+", "+"},
		{"-", "-"},
		{">=", ">="},
		{"my-symbol?", "my-symbol?"},
		{"&", "&"},
		{"\\", "\\"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := New(tt.input).NextToken()
			if tok.Type != token.SYMBOL {
				t.Fatalf("expected SYMBOL, got %q", tok.Type)
			}
			if tok.Literal != tt.expected {
				t.Errorf("expected literal %q, got %q", tt.expected, tok.Literal)
			}
		})
	}
}

func TestStringEscapes(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"plain"`, "plain"},
		{`"tab\there"`, "tab\there"},
		{`"quote\"inside"`, `quote"inside`},
		{`"back\\slash"`, `back\slash`},
		{`"cr\r"`, "cr\r"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := New(tt.input).NextToken()
			if tok.Type != token.STRING {
				t.Fatalf("expected STRING, got %q (%q)", tok.Type, tok.Literal)
			}
			if tok.Literal != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tok.Literal)
			}
		})
	}
}

func TestUnterminatedString(t *testing.T) {
	tok := New(`"oops`).NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %q", tok.Type)
	}
}

// Once the input is exhausted the reported position stays put, no matter how
// often the lexer is advanced.
func TestPositionStopsAtEOF(t *testing.T) {
	l := New("x")
	l.NextToken() // x

	first := l.NextToken()
	if first.Type != token.EOF {
		t.Fatalf("expected EOF, got %q", first.Type)
	}

	l.readChar()
	l.readChar()
	again := l.NextToken()
	if again.Line != first.Line || again.Column != first.Column {
		t.Errorf("EOF drifted from %d:%d to %d:%d",
			first.Line, first.Column, again.Line, again.Column)
	}
}

func TestLineAndColumn(t *testing.T) {
	l := New("(a\n  b)")
	l.NextToken() // (
	a := l.NextToken()
	if a.Line != 1 || a.Column != 2 {
		t.Errorf("a at %d:%d, expected 1:2", a.Line, a.Column)
	}
	b := l.NextToken()
	if b.Line != 2 || b.Column != 3 {
		t.Errorf("b at %d:%d, expected 2:3", b.Line, b.Column)
	}
}
