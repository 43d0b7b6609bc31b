package lexer

import (
	"fmt"
	"math/big"
)

// Kind identifies the lexical class of a token.
type Kind int

const (
	KindNumber Kind = iota
	KindOperator
	KindParen
	KindBrace
	KindIdentifier
	KindKeyword
	KindSemicolon
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindOperator:
		return "operator"
	case KindParen:
		return "paren"
	case KindBrace:
		return "brace"
	case KindIdentifier:
		return "identifier"
	case KindKeyword:
		return "keyword"
	case KindSemicolon:
		return "semicolon"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalYAML renders the kind by name in AST and token dumps.
func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// Reserved words.
const (
	KeywordIf    = "if"
	KeywordWhile = "while"
	KeywordPrint = "print"
)

var keywords = map[string]struct{}{
	KeywordIf:    {},
	KeywordWhile: {},
	KeywordPrint: {},
}

// IsKeyword reports whether word is reserved. Only whole words match.
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}

// Position is a zero-based row/column pair.
type Position struct {
	Row    int `yaml:"row"`
	Column int `yaml:"column"`
}

// String renders the position one-based, as editors display it.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row+1, p.Column+1)
}

// Token is a classified lexeme. Value is set for number tokens only.
type Token struct {
	Position `yaml:",inline"`

	Kind   Kind     `yaml:"kind"`
	Lexeme string   `yaml:"lexeme"`
	Value  *big.Int `yaml:"-"`
}

// Is reports whether the token has the given kind and lexeme.
func (t Token) Is(kind Kind, lexeme string) bool {
	return t.Kind == kind && t.Lexeme == lexeme
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Position, t.Kind, t.Lexeme)
}
