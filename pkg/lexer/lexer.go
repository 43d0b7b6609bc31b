package lexer

import (
	"errors"
	"fmt"
	"math/big"
	"unicode/utf8"
)

// ErrLex is wrapped by every error the lexer returns.
var ErrLex = errors.New("lex error")

// LexError reports the first character that matches no token class.
type LexError struct {
	Position
	Char rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error: %s at %s", e.Detail(), e.Position)
}

// Detail describes the error without its position.
func (e *LexError) Detail() string {
	return fmt.Sprintf("unexpected character %q", e.Char)
}

func (e *LexError) Unwrap() error {
	return ErrLex
}

// Lexer converts source text into tokens. It is single use.
type Lexer struct {
	source string
	cursor int
	row    int
	column int
	// rowEnds[r] is the column of the newline that terminates row r.
	rowEnds []int
}

// New prepares a lexer over source.
func New(source string) *Lexer {
	l := &Lexer{source: source}
	column := 0
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			l.rowEnds = append(l.rowEnds, column)
			column = 0
			continue
		}
		column++
	}
	return l
}

// Lex tokenizes source in one call.
func Lex(source string) ([]Token, error) {
	return New(source).Lex()
}

// Lex scans the whole input and stops at the first unrecognized character.
func (l *Lexer) Lex() ([]Token, error) {
	tokens := make([]Token, 0, len(l.source)/2)
	for !l.done() {
		ch := l.current()
		start := l.position()
		switch {
		case isDigit(ch):
			lexeme := l.readWhile(isDigit)
			value, ok := new(big.Int).SetString(lexeme, 10)
			if !ok {
				return nil, &LexError{Position: start, Char: rune(ch)}
			}
			tokens = append(tokens, Token{Position: start, Kind: KindNumber, Lexeme: lexeme, Value: value})
		case isOperator(ch):
			tokens = append(tokens, Token{Position: start, Kind: KindOperator, Lexeme: string(ch)})
		case ch == '(' || ch == ')':
			tokens = append(tokens, Token{Position: start, Kind: KindParen, Lexeme: string(ch)})
		case ch == '{' || ch == '}':
			tokens = append(tokens, Token{Position: start, Kind: KindBrace, Lexeme: string(ch)})
		case isIdentifierChar(ch):
			word := l.readWhile(isIdentifierChar)
			kind := KindIdentifier
			if IsKeyword(word) {
				kind = KindKeyword
			}
			tokens = append(tokens, Token{Position: start, Kind: kind, Lexeme: word})
		case ch == '\n':
			// advance moves the cursor onto the next row.
		case ch == ';':
			tokens = append(tokens, Token{Position: start, Kind: KindSemicolon, Lexeme: ";"})
		case isSpace(ch):
			l.readWhile(isSpace)
		default:
			r, _ := utf8.DecodeRuneInString(l.source[l.cursor:])
			return nil, &LexError{Position: start, Char: r}
		}
		l.advance()
	}
	return tokens, nil
}

func (l *Lexer) done() bool {
	return l.cursor >= len(l.source)
}

func (l *Lexer) current() byte {
	return l.source[l.cursor]
}

func (l *Lexer) position() Position {
	return Position{Row: l.row, Column: l.column}
}

// advance steps over the current character. Stepping over a newline starts
// the next row.
func (l *Lexer) advance() {
	if l.source[l.cursor] == '\n' {
		l.row++
		l.column = 0
	} else {
		l.column++
	}
	l.cursor++
}

// retreat undoes one advance. Backing over a newline lands on the previous
// row at the column of its newline.
func (l *Lexer) retreat() {
	if l.cursor == 0 {
		return
	}
	l.cursor--
	if l.column > 0 {
		l.column--
		return
	}
	if l.row > 0 {
		l.row--
		l.column = l.rowEnds[l.row]
	}
}

// readWhile consumes the maximal run matching pred and leaves the cursor on
// its last character, so the main loop's advance steps past it.
func (l *Lexer) readWhile(pred func(byte) bool) string {
	start := l.cursor
	for !l.done() && pred(l.current()) {
		l.advance()
	}
	l.retreat()
	return l.source[start : l.cursor+1]
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isOperator(ch byte) bool {
	switch ch {
	case '*', '/', '+', '-', '=', '%':
		return true
	}
	return false
}

func isIdentifierChar(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_' || ch == '-'
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}
