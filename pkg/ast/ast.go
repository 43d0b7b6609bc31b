package ast

import (
	"math/big"

	"minilang/interpreter-go/pkg/lexer"
)

type NodeType string

const (
	NodeNumberLiteral        NodeType = "NumberLiteral"
	NodeIdentifier           NodeType = "Identifier"
	NodeUnaryExpression      NodeType = "UnaryExpression"
	NodeBinaryExpression     NodeType = "BinaryExpression"
	NodeAssignmentExpression NodeType = "AssignmentExpression"
	NodeIfStatement          NodeType = "IfStatement"
	NodeWhileStatement       NodeType = "WhileStatement"
	NodePrintStatement       NodeType = "PrintStatement"
)

// Node is implemented only by the node types in this package; the marker
// methods are unexported so evaluators can switch over a closed set.
type Node interface {
	NodeType() NodeType
	Token() lexer.Token
	isNode()
}

type nodeImpl struct {
	Type   NodeType    `yaml:"type"`
	Origin lexer.Token `yaml:"-"`
}

func newNodeImpl(kind NodeType, origin lexer.Token) nodeImpl {
	return nodeImpl{Type: kind, Origin: origin}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (n nodeImpl) Token() lexer.Token { return n.Origin }
func (nodeImpl) isNode()              {}

func (n *nodeImpl) setToken(t lexer.Token) { n.Origin = t }

// Marker interfaces.

// Expression nodes yield a value. Every expression is also a statement.
type Expression interface {
	Node
	expressionNode()
	statementNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

// WithToken attaches the originating token to node and returns it.
func WithToken[T Node](node T, tok lexer.Token) T {
	if setter, ok := any(node).(interface{ setToken(lexer.Token) }); ok {
		setter.setToken(tok)
	}
	return node
}

// Expressions

type NumberLiteral struct {
	nodeImpl         `yaml:",inline"`
	expressionMarker `yaml:"-"`
	statementMarker  `yaml:"-"`

	Value *big.Int `yaml:"value"`
}

func NewNumberLiteral(value *big.Int) *NumberLiteral {
	return &NumberLiteral{nodeImpl: newNodeImpl(NodeNumberLiteral, lexer.Token{}), Value: value}
}

type Identifier struct {
	nodeImpl         `yaml:",inline"`
	expressionMarker `yaml:"-"`
	statementMarker  `yaml:"-"`

	Name string `yaml:"name"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier, lexer.Token{}), Name: name}
}

type UnaryOperator string

const UnaryOperatorNegate UnaryOperator = "-"

type UnaryExpression struct {
	nodeImpl         `yaml:",inline"`
	expressionMarker `yaml:"-"`
	statementMarker  `yaml:"-"`

	Operator UnaryOperator `yaml:"operator"`
	Operand  Expression    `yaml:"operand"`
}

func NewUnaryExpression(operator UnaryOperator, operand Expression) *UnaryExpression {
	return &UnaryExpression{nodeImpl: newNodeImpl(NodeUnaryExpression, lexer.Token{}), Operator: operator, Operand: operand}
}

type BinaryOperator string

const (
	BinaryAdd BinaryOperator = "+"
	BinarySub BinaryOperator = "-"
	BinaryMul BinaryOperator = "*"
	BinaryDiv BinaryOperator = "/"
	BinaryMod BinaryOperator = "%"
)

type BinaryExpression struct {
	nodeImpl         `yaml:",inline"`
	expressionMarker `yaml:"-"`
	statementMarker  `yaml:"-"`

	Operator BinaryOperator `yaml:"operator"`
	Left     Expression     `yaml:"left"`
	Right    Expression     `yaml:"right"`
}

func NewBinaryExpression(operator BinaryOperator, left, right Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression, lexer.Token{}), Operator: operator, Left: left, Right: right}
}

// AssignmentExpression binds Target and yields the assigned value, which lets
// an assignment stand as an if/while condition or a print operand.
type AssignmentExpression struct {
	nodeImpl         `yaml:",inline"`
	expressionMarker `yaml:"-"`
	statementMarker  `yaml:"-"`

	Target *Identifier `yaml:"target"`
	Value  Expression  `yaml:"value"`
}

func NewAssignmentExpression(target *Identifier, value Expression) *AssignmentExpression {
	return &AssignmentExpression{nodeImpl: newNodeImpl(NodeAssignmentExpression, lexer.Token{}), Target: target, Value: value}
}

// Statements

type IfStatement struct {
	nodeImpl        `yaml:",inline"`
	statementMarker `yaml:"-"`

	Condition Expression  `yaml:"condition"`
	Body      []Statement `yaml:"body"`
}

func NewIfStatement(condition Expression, body []Statement) *IfStatement {
	return &IfStatement{nodeImpl: newNodeImpl(NodeIfStatement, lexer.Token{}), Condition: condition, Body: body}
}

type WhileStatement struct {
	nodeImpl        `yaml:",inline"`
	statementMarker `yaml:"-"`

	Condition Expression  `yaml:"condition"`
	Body      []Statement `yaml:"body"`
}

func NewWhileStatement(condition Expression, body []Statement) *WhileStatement {
	return &WhileStatement{nodeImpl: newNodeImpl(NodeWhileStatement, lexer.Token{}), Condition: condition, Body: body}
}

type PrintStatement struct {
	nodeImpl        `yaml:",inline"`
	statementMarker `yaml:"-"`

	Expression Expression `yaml:"expression"`
}

func NewPrintStatement(expression Expression) *PrintStatement {
	return &PrintStatement{nodeImpl: newNodeImpl(NodePrintStatement, lexer.Token{}), Expression: expression}
}
