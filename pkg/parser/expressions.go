package parser

import (
	"minilang/interpreter-go/pkg/ast"
	"minilang/interpreter-go/pkg/lexer"
)

var (
	additiveOperators       = map[string]ast.BinaryOperator{"+": ast.BinaryAdd, "-": ast.BinarySub}
	multiplicativeOperators = map[string]ast.BinaryOperator{"*": ast.BinaryMul, "/": ast.BinaryDiv, "%": ast.BinaryMod}
)

func (p *Parser) parseAdditive() (ast.Expression, error) {
	return p.parseBinaryLevel(additiveOperators, p.parseMultiplicative)
}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	return p.parseBinaryLevel(multiplicativeOperators, p.parseUnary)
}

// parseBinaryLevel folds `operand (op operand)*` to the left.
func (p *Parser) parseBinaryLevel(ops map[string]ast.BinaryOperator, operand func() (ast.Expression, error)) (ast.Expression, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.current()
		if !ok || tok.Kind != lexer.KindOperator {
			return left, nil
		}
		op, isLevel := ops[tok.Lexeme]
		if !isLevel {
			return left, nil
		}
		p.advance()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = ast.WithToken(ast.NewBinaryExpression(op, left, right), tok)
	}
}

func (p *Parser) parseUnary() (ast.Expression, error) {
	tok, ok := p.current()
	if ok && tok.Is(lexer.KindOperator, "-") {
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.WithToken(ast.NewUnaryExpression(ast.UnaryOperatorNegate, operand), tok), nil
	}
	return p.parseTerm()
}

func (p *Parser) parseTerm() (ast.Expression, error) {
	tok, ok := p.current()
	if !ok {
		return nil, p.errorf(expectExpression)
	}
	switch {
	case tok.Is(lexer.KindParen, "("):
		p.advance()
		inner, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(lexer.KindParen, ")"); err != nil {
			return nil, err
		}
		return inner, nil
	case tok.Kind == lexer.KindNumber:
		p.advance()
		return ast.WithToken(ast.NewNumberLiteral(tok.Value), tok), nil
	case tok.Kind == lexer.KindIdentifier:
		p.advance()
		return ast.WithToken(ast.NewIdentifier(tok.Lexeme), tok), nil
	default:
		return nil, p.errorf(expectExpression)
	}
}
