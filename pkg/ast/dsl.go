package ast

import "math/big"

// Literal and identifier helpers.

func Num(value int64) *NumberLiteral {
	return NewNumberLiteral(big.NewInt(value))
}

func NumBig(value *big.Int) *NumberLiteral {
	return NewNumberLiteral(new(big.Int).Set(value))
}

func ID(name string) *Identifier {
	return NewIdentifier(name)
}

// Expression helpers.

func Neg(operand Expression) *UnaryExpression {
	return NewUnaryExpression(UnaryOperatorNegate, operand)
}

func Bin(op string, left, right Expression) *BinaryExpression {
	return NewBinaryExpression(BinaryOperator(op), left, right)
}

func Assign(target string, value Expression) *AssignmentExpression {
	return NewAssignmentExpression(ID(target), value)
}

// Statement helpers.

func If(condition Expression, body ...Statement) *IfStatement {
	return NewIfStatement(condition, body)
}

func While(condition Expression, body ...Statement) *WhileStatement {
	return NewWhileStatement(condition, body)
}

func Print(expression Expression) *PrintStatement {
	return NewPrintStatement(expression)
}

func Block(statements ...Statement) []Statement {
	return statements
}
