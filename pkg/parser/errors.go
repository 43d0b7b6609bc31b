package parser

import (
	"errors"
	"fmt"

	"minilang/interpreter-go/pkg/lexer"
)

// ErrParse is wrapped by every syntax error the parser returns.
var ErrParse = errors.New("parse error")

// expectExpression is used as Expected when no single lexeme fits.
const expectExpression = "expression"

const endOfInput = "end of input"

// ParseError describes the first token that did not fit the grammar. When
// the input ran out, AtEOF is set, Found reads "end of input" and the
// position is that of the last token.
type ParseError struct {
	lexer.Position
	Expected string
	Found    string
	AtEOF    bool
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s at %s", e.Detail(), e.Position)
}

// Detail describes the error without its position.
func (e *ParseError) Detail() string {
	found := fmt.Sprintf("%q", e.Found)
	if e.AtEOF {
		found = endOfInput
	}
	return fmt.Sprintf("expected %s but found %s", describeExpected(e.Expected), found)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

func describeExpected(expected string) string {
	if expected == expectExpression {
		return expected
	}
	return fmt.Sprintf("%q", expected)
}
