package interpreter

import (
	"errors"
	"fmt"

	"minilang/interpreter-go/pkg/ast"
	"minilang/interpreter-go/pkg/lexer"
)

// ErrRuntime is wrapped by every evaluation failure caused by the program.
var ErrRuntime = errors.New("runtime error")

type RuntimeErrorKind int

const (
	DivisionByZero RuntimeErrorKind = iota
	UndefinedVariable
)

func (k RuntimeErrorKind) String() string {
	switch k {
	case DivisionByZero:
		return "division by zero"
	case UndefinedVariable:
		return "undefined variable"
	default:
		return fmt.Sprintf("runtime error kind(%d)", int(k))
	}
}

// RuntimeError halts a run at the node that caused it. Position is the
// node's origin token.
type RuntimeError struct {
	lexer.Position
	Kind       RuntimeErrorKind
	Message    string
	Suggestion string
}

func (e *RuntimeError) Error() string {
	msg := fmt.Sprintf("runtime error: %s at %s", e.Message, e.Position)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

// Detail describes the error without its position.
func (e *RuntimeError) Detail() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s (did you mean %q?)", e.Message, e.Suggestion)
	}
	return e.Message
}

func (e *RuntimeError) Unwrap() error {
	return ErrRuntime
}

func newRuntimeError(kind RuntimeErrorKind, node ast.Node, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{
		Position: node.Token().Position,
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
	}
}

// InternalError reports a node the evaluator does not know how to run.
type InternalError struct {
	Node ast.Node
}

func (e *InternalError) Error() string {
	if e.Node == nil {
		return "interpreter: internal error: nil node"
	}
	return fmt.Sprintf("interpreter: internal error: unsupported node %s (%T)", e.Node.NodeType(), e.Node)
}
