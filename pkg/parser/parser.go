package parser

import (
	"minilang/interpreter-go/pkg/ast"
	"minilang/interpreter-go/pkg/lexer"
)

// Parser builds statements from a token slice by recursive descent with a
// single token of lookahead. It is single use.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New prepares a parser over tokens.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses a complete token stream.
func Parse(tokens []lexer.Token) ([]ast.Statement, error) {
	return New(tokens).ParseProgram()
}

// ParseSource lexes and parses source. Lex errors are returned unchanged.
func ParseSource(source string) ([]ast.Statement, error) {
	tokens, err := lexer.Lex(source)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// ParseProgram parses statements until the tokens are exhausted and stops at
// the first syntax error.
func (p *Parser) ParseProgram() ([]ast.Statement, error) {
	program := make([]ast.Statement, 0)
	for !p.done() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program = append(program, stmt)
	}
	return program, nil
}

func (p *Parser) done() bool {
	return p.pos >= len(p.tokens)
}

func (p *Parser) current() (lexer.Token, bool) {
	if p.done() {
		return lexer.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *Parser) advance() {
	if !p.done() {
		p.pos++
	}
}

func (p *Parser) retreat() {
	if p.pos > 0 {
		p.pos--
	}
}

// check reports whether the current token has kind and lexeme.
func (p *Parser) check(kind lexer.Kind, lexeme string) bool {
	tok, ok := p.current()
	return ok && tok.Is(kind, lexeme)
}

// eat consumes the current token when it has kind and lexeme, and fails
// with a ParseError naming lexeme otherwise.
func (p *Parser) eat(kind lexer.Kind, lexeme string) (lexer.Token, error) {
	tok, ok := p.current()
	if !ok || !tok.Is(kind, lexeme) {
		return lexer.Token{}, p.errorf(lexeme)
	}
	p.advance()
	return tok, nil
}

// peekIs looks one token past the current one. The cursor is restored.
func (p *Parser) peekIs(kind lexer.Kind, lexeme string) bool {
	p.advance()
	matched := p.check(kind, lexeme)
	p.retreat()
	return matched
}

func (p *Parser) errorf(expected string) *ParseError {
	if tok, ok := p.current(); ok {
		return &ParseError{Position: tok.Position, Expected: expected, Found: tok.Lexeme}
	}
	err := &ParseError{Expected: expected, Found: endOfInput, AtEOF: true}
	if n := len(p.tokens); n > 0 {
		err.Position = p.tokens[n-1].Position
	}
	return err
}
