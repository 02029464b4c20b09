package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lilith-lang/lilith/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		if l.readPosition == len(l.input) {
			// Step onto the EOF position once; further calls are no-ops so
			// the reported position cannot drift past the input.
			l.column++
			l.readPosition++
		}
		l.ch = 0
		l.position = len(l.input)
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	line, column := l.line, l.column

	switch l.ch {
	case 0:
		return token.Token{Type: token.EOF, Literal: "", Line: line, Column: column}
	case '(':
		l.readChar()
		return token.Token{Type: token.LPAREN, Literal: "(", Line: line, Column: column}
	case ')':
		l.readChar()
		return token.Token{Type: token.RPAREN, Literal: ")", Line: line, Column: column}
	case '{':
		l.readChar()
		return token.Token{Type: token.LBRACE, Literal: "{", Line: line, Column: column}
	case '}':
		l.readChar()
		return token.Token{Type: token.RBRACE, Literal: "}", Line: line, Column: column}
	case '"':
		return l.readString(line, column)
	case '#':
		return l.readBool(line, column)
	}

	if unicode.IsDigit(l.ch) || (isSign(l.ch) && unicode.IsDigit(l.peekChar())) {
		return l.readNumber(line, column)
	}
	if isSymbolRune(l.ch) {
		return l.readSymbol(line, column)
	}

	illegal := string(l.ch)
	l.readChar()
	return token.Token{Type: token.ILLEGAL, Literal: illegal, Line: line, Column: column}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for unicode.IsSpace(l.ch) {
			l.readChar()
		}
		if l.ch != ';' {
			return
		}
		for l.ch != '\n' && l.ch != 0 {
			l.readChar()
		}
	}
}

func (l *Lexer) readNumber(line, column int) token.Token {
	var sb strings.Builder
	if isSign(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	isFloat := false
	for unicode.IsDigit(l.ch) || l.ch == '.' {
		if l.ch == '.' {
			if isFloat || !unicode.IsDigit(l.peekChar()) {
				break
			}
			isFloat = true
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}

	typ := token.TokenType(token.INT)
	if isFloat {
		typ = token.FLOAT
	}
	return token.Token{Type: typ, Literal: sb.String(), Line: line, Column: column}
}

func (l *Lexer) readString(line, column int) token.Token {
	var sb strings.Builder
	l.readChar() // consume opening quote
	for l.ch != '"' {
		if l.ch == 0 {
			return token.Token{Type: token.ILLEGAL, Literal: "unterminated string", Line: line, Column: column}
		}
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '0':
				sb.WriteByte(0)
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			case 0:
				return token.Token{Type: token.ILLEGAL, Literal: "unterminated string", Line: line, Column: column}
			default:
				sb.WriteRune(l.ch)
			}
			l.readChar()
			continue
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}
	l.readChar() // consume closing quote
	return token.Token{Type: token.STRING, Literal: sb.String(), Line: line, Column: column}
}

func (l *Lexer) readBool(line, column int) token.Token {
	l.readChar() // consume '#'
	switch l.ch {
	case 't', 'f':
		lit := "#" + string(l.ch)
		l.readChar()
		return token.Token{Type: token.BOOL, Literal: lit, Line: line, Column: column}
	default:
		illegal := "#" + string(l.ch)
		l.readChar()
		return token.Token{Type: token.ILLEGAL, Literal: illegal, Line: line, Column: column}
	}
}

func (l *Lexer) readSymbol(line, column int) token.Token {
	var sb strings.Builder
	for isSymbolRune(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	return token.Token{Type: token.SYMBOL, Literal: sb.String(), Line: line, Column: column}
}

func isSign(ch rune) bool {
	return ch == '-' || ch == '+'
}

// isSymbolRune reports whether ch can appear in a bare symbol. Anything
// printable that is not a delimiter, string quote or comment marker counts,
// so operator names like +, <=, and \ lex as plain symbols.
func isSymbolRune(ch rune) bool {
	if ch == 0 || unicode.IsSpace(ch) {
		return false
	}
	switch ch {
	case '(', ')', '{', '}', '"', ';':
		return false
	}
	return true
}
