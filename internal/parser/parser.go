package parser

import (
	"fmt"
	"strconv"

	"github.com/lilith-lang/lilith/internal/evaluator"
	"github.com/lilith-lang/lilith/internal/lexer"
	"github.com/lilith-lang/lilith/internal/token"
)

// Parser is the reader: it turns source text into the value tree the
// evaluator consumes. There is no separate syntax tree; forms are evaluator
// objects from the start.
type Parser struct {
	l    *lexer.Lexer
	name string
	cur  token.Token
}

func New(l *lexer.Lexer, name string) *Parser {
	p := &Parser{l: l, name: name}
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.l.NextToken()
}

func (p *Parser) errorf(tok token.Token, format string, a ...interface{}) error {
	msg := fmt.Sprintf(format, a...)
	return fmt.Errorf("%s:%d:%d: %s", p.name, tok.Line, tok.Column, msg)
}

// Parse reads every top-level form until EOF.
func (p *Parser) Parse() ([]evaluator.Object, error) {
	var forms []evaluator.Object
	for p.cur.Type != token.EOF {
		form, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}
	return forms, nil
}

func (p *Parser) parseForm() (evaluator.Object, error) {
	tok := p.cur
	switch tok.Type {
	case token.INT:
		n, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, p.errorf(tok, "invalid number %q", tok.Literal)
		}
		p.next()
		return &evaluator.Integer{Value: n}, nil
	case token.FLOAT:
		n, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, p.errorf(tok, "invalid decimal %q", tok.Literal)
		}
		p.next()
		return &evaluator.Float{Value: n}, nil
	case token.BOOL:
		p.next()
		return &evaluator.Boolean{Value: tok.Literal == "#t"}, nil
	case token.STRING:
		p.next()
		return &evaluator.String{Value: tok.Literal}, nil
	case token.SYMBOL:
		p.next()
		return &evaluator.Symbol{Value: tok.Literal}, nil
	case token.LPAREN:
		elems, err := p.parseSeq(token.RPAREN, tok)
		if err != nil {
			return nil, err
		}
		return &evaluator.Sexpr{Elements: elems}, nil
	case token.LBRACE:
		elems, err := p.parseSeq(token.RBRACE, tok)
		if err != nil {
			return nil, err
		}
		return &evaluator.Qexpr{Elements: elems}, nil
	case token.RPAREN, token.RBRACE:
		return nil, p.errorf(tok, "unexpected %q", tok.Literal)
	default:
		return nil, p.errorf(tok, "unexpected input %q", tok.Literal)
	}
}

func (p *Parser) parseSeq(closing token.TokenType, open token.Token) ([]evaluator.Object, error) {
	p.next() // consume opening bracket
	elems := []evaluator.Object{}
	for p.cur.Type != closing {
		if p.cur.Type == token.EOF {
			return nil, p.errorf(open, "unterminated %q", open.Literal)
		}
		el, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		elems = append(elems, el)
	}
	p.next() // consume closing bracket
	return elems, nil
}
