package token

type TokenType string

type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	// Literals
	INT    = "INT"    // 42
	FLOAT  = "FLOAT"  // 3.14
	STRING = "STRING" // "hello"
	BOOL   = "BOOL"   // #t / #f
	SYMBOL = "SYMBOL" // head, +, my-symbol

	// Delimiters
	LPAREN = "("
	RPAREN = ")"
	LBRACE = "{"
	RBRACE = "}"
)
