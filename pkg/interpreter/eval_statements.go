package interpreter

import (
	"minilang/interpreter-go/pkg/ast"
	"minilang/interpreter-go/pkg/runtime"
)

func (i *Interpreter) executeBlock(statements []ast.Statement, env *runtime.Environment) error {
	for _, stmt := range statements {
		if err := i.executeStatement(stmt, env); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) executeStatement(node ast.Statement, env *runtime.Environment) error {
	if node == nil {
		return &InternalError{}
	}
	i.trace(node)
	switch n := node.(type) {
	case *ast.IfStatement:
		return i.executeIf(n, env)
	case *ast.WhileStatement:
		return i.executeWhile(n, env)
	case *ast.PrintStatement:
		return i.executePrint(n, env)
	case ast.Expression:
		_, err := i.evaluateExpression(n, env)
		return err
	default:
		return &InternalError{Node: node}
	}
}

// Bodies run in the same environment as the statement itself.
func (i *Interpreter) executeIf(stmt *ast.IfStatement, env *runtime.Environment) error {
	cond, err := i.evaluateExpression(stmt.Condition, env)
	if err != nil {
		return err
	}
	if !cond.Truthy() {
		return nil
	}
	return i.executeBlock(stmt.Body, env)
}

func (i *Interpreter) executeWhile(loop *ast.WhileStatement, env *runtime.Environment) error {
	for {
		cond, err := i.evaluateExpression(loop.Condition, env)
		if err != nil {
			return err
		}
		if !cond.Truthy() {
			return nil
		}
		if err := i.executeBlock(loop.Body, env); err != nil {
			return err
		}
	}
}

func (i *Interpreter) executePrint(stmt *ast.PrintStatement, env *runtime.Environment) error {
	value, err := i.evaluateExpression(stmt.Expression, env)
	if err != nil {
		return err
	}
	return i.print(value)
}
