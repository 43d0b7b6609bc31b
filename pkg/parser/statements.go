package parser

import (
	"minilang/interpreter-go/pkg/ast"
	"minilang/interpreter-go/pkg/lexer"
)

func (p *Parser) parseStatement() (ast.Statement, error) {
	tok, _ := p.current()
	if tok.Kind == lexer.KindKeyword {
		switch tok.Lexeme {
		case lexer.KeywordIf:
			return p.parseIf()
		case lexer.KeywordWhile:
			return p.parseWhile()
		case lexer.KeywordPrint:
			return p.parsePrint()
		}
	}
	return p.parseAssignmentOrExpression(false)
}

func (p *Parser) parseIf() (ast.Statement, error) {
	tok, condition, body, err := p.parseGuardedBlock(lexer.KeywordIf)
	if err != nil {
		return nil, err
	}
	return ast.WithToken(ast.NewIfStatement(condition, body), tok), nil
}

func (p *Parser) parseWhile() (ast.Statement, error) {
	tok, condition, body, err := p.parseGuardedBlock(lexer.KeywordWhile)
	if err != nil {
		return nil, err
	}
	return ast.WithToken(ast.NewWhileStatement(condition, body), tok), nil
}

// parseGuardedBlock parses `keyword ( condition ) { statement* }`.
func (p *Parser) parseGuardedBlock(keyword string) (lexer.Token, ast.Expression, []ast.Statement, error) {
	tok, err := p.eat(lexer.KindKeyword, keyword)
	if err != nil {
		return tok, nil, nil, err
	}
	if _, err := p.eat(lexer.KindParen, "("); err != nil {
		return tok, nil, nil, err
	}
	condition, err := p.parseAssignmentOrExpression(true)
	if err != nil {
		return tok, nil, nil, err
	}
	if _, err := p.eat(lexer.KindParen, ")"); err != nil {
		return tok, nil, nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return tok, nil, nil, err
	}
	return tok, condition, body, nil
}

func (p *Parser) parseBlock() ([]ast.Statement, error) {
	if _, err := p.eat(lexer.KindBrace, "{"); err != nil {
		return nil, err
	}
	body := make([]ast.Statement, 0)
	for !p.done() && !p.check(lexer.KindBrace, "}") {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	if _, err := p.eat(lexer.KindBrace, "}"); err != nil {
		return nil, err
	}
	return body, nil
}

func (p *Parser) parsePrint() (ast.Statement, error) {
	tok, err := p.eat(lexer.KindKeyword, lexer.KeywordPrint)
	if err != nil {
		return nil, err
	}
	expr, err := p.parseAssignmentOrExpression(false)
	if err != nil {
		return nil, err
	}
	return ast.WithToken(ast.NewPrintStatement(expr), tok), nil
}

// parseAssignmentOrExpression parses `identifier = additive` or a bare
// additive expression, followed by `;`. Inside a parenthesised condition the
// `;` is optional since the closing paren ends the expression.
func (p *Parser) parseAssignmentOrExpression(inCondition bool) (ast.Expression, error) {
	var expr ast.Expression
	tok, _ := p.current()
	if tok.Kind == lexer.KindIdentifier && p.peekIs(lexer.KindOperator, "=") {
		p.advance()
		eq, _ := p.current()
		p.advance()
		value, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		target := ast.WithToken(ast.NewIdentifier(tok.Lexeme), tok)
		expr = ast.WithToken(ast.NewAssignmentExpression(target, value), eq)
	} else {
		value, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		expr = value
	}
	if inCondition {
		if p.check(lexer.KindSemicolon, ";") {
			p.advance()
		}
		return expr, nil
	}
	if _, err := p.eat(lexer.KindSemicolon, ";"); err != nil {
		return nil, err
	}
	return expr, nil
}
