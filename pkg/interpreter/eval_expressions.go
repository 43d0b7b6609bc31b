package interpreter

import (
	"minilang/interpreter-go/pkg/ast"
	"minilang/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateExpression(node ast.Expression, env *runtime.Environment) (runtime.Integer, error) {
	if node == nil {
		return runtime.Integer{}, &InternalError{}
	}
	switch n := node.(type) {
	case *ast.NumberLiteral:
		return runtime.IntegerFromBig(n.Value), nil
	case *ast.Identifier:
		return i.evaluateIdentifier(n, env)
	case *ast.UnaryExpression:
		return i.evaluateUnaryExpression(n, env)
	case *ast.BinaryExpression:
		return i.evaluateBinaryExpression(n, env)
	case *ast.AssignmentExpression:
		return i.evaluateAssignment(n, env)
	default:
		return runtime.Integer{}, &InternalError{Node: node}
	}
}

func (i *Interpreter) evaluateIdentifier(id *ast.Identifier, env *runtime.Environment) (runtime.Integer, error) {
	if value, ok := env.Lookup(id.Name); ok {
		return value, nil
	}
	if i.undefinedAsZero {
		return runtime.Zero(), nil
	}
	err := newRuntimeError(UndefinedVariable, id, "undefined variable %q", id.Name)
	err.Suggestion = suggestName(id.Name, env)
	return runtime.Integer{}, err
}

func (i *Interpreter) evaluateUnaryExpression(expr *ast.UnaryExpression, env *runtime.Environment) (runtime.Integer, error) {
	if expr.Operator != ast.UnaryOperatorNegate {
		return runtime.Integer{}, &InternalError{Node: expr}
	}
	operand, err := i.evaluateExpression(expr.Operand, env)
	if err != nil {
		return runtime.Integer{}, err
	}
	return operand.Neg(), nil
}

// Left is evaluated before right.
func (i *Interpreter) evaluateBinaryExpression(expr *ast.BinaryExpression, env *runtime.Environment) (runtime.Integer, error) {
	left, err := i.evaluateExpression(expr.Left, env)
	if err != nil {
		return runtime.Integer{}, err
	}
	right, err := i.evaluateExpression(expr.Right, env)
	if err != nil {
		return runtime.Integer{}, err
	}
	return applyBinaryOperator(expr, left, right)
}

func applyBinaryOperator(expr *ast.BinaryExpression, left, right runtime.Integer) (runtime.Integer, error) {
	switch expr.Operator {
	case ast.BinaryAdd:
		return left.Add(right), nil
	case ast.BinarySub:
		return left.Sub(right), nil
	case ast.BinaryMul:
		return left.Mul(right), nil
	case ast.BinaryDiv:
		if right.IsZero() {
			return runtime.Integer{}, newRuntimeError(DivisionByZero, expr, "division by zero")
		}
		return left.Quo(right), nil
	case ast.BinaryMod:
		if right.IsZero() {
			return runtime.Integer{}, newRuntimeError(DivisionByZero, expr, "modulo by zero")
		}
		return left.Rem(right), nil
	default:
		return runtime.Integer{}, &InternalError{Node: expr}
	}
}

// evaluateAssignment binds or overwrites the target and yields the value.
func (i *Interpreter) evaluateAssignment(assign *ast.AssignmentExpression, env *runtime.Environment) (runtime.Integer, error) {
	if assign.Target == nil {
		return runtime.Integer{}, &InternalError{Node: assign}
	}
	value, err := i.evaluateExpression(assign.Value, env)
	if err != nil {
		return runtime.Integer{}, err
	}
	env.Define(assign.Target.Name, value)
	return value, nil
}
