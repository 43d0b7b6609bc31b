package interpreter

import (
	"fmt"
	"io"
	"log"
	"os"

	"minilang/interpreter-go/pkg/ast"
	"minilang/interpreter-go/pkg/runtime"
)

// Interpreter walks a parsed program against a caller-supplied environment.
// An Interpreter holds no program state of its own and may be reused.
type Interpreter struct {
	out             io.Writer
	undefinedAsZero bool
	tracer          *log.Logger
}

type Option func(*Interpreter)

// WithOutput directs print statements to w instead of os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(i *Interpreter) {
		i.out = w
	}
}

// WithUndefinedAsZero makes unassigned identifiers evaluate to 0 instead of
// failing the run.
func WithUndefinedAsZero() Option {
	return func(i *Interpreter) {
		i.undefinedAsZero = true
	}
}

// WithTracer logs every executed statement to logger.
func WithTracer(logger *log.Logger) Option {
	return func(i *Interpreter) {
		i.tracer = logger
	}
}

func New(opts ...Option) *Interpreter {
	interp := &Interpreter{out: os.Stdout}
	for _, opt := range opts {
		opt(interp)
	}
	return interp
}

// Interpret executes statements in order and stops at the first error. A nil
// env runs against a fresh, empty environment.
func (i *Interpreter) Interpret(statements []ast.Statement, env *runtime.Environment) error {
	if env == nil {
		env = runtime.NewEnvironment()
	}
	return i.executeBlock(statements, env)
}

// Evaluate computes the value of a single expression.
func (i *Interpreter) Evaluate(expr ast.Expression, env *runtime.Environment) (runtime.Integer, error) {
	if env == nil {
		env = runtime.NewEnvironment()
	}
	return i.evaluateExpression(expr, env)
}

func (i *Interpreter) trace(node ast.Node) {
	if i.tracer == nil {
		return
	}
	i.tracer.Printf("%s at %s", node.NodeType(), node.Token().Position)
}

func (i *Interpreter) print(value runtime.Integer) error {
	if _, err := fmt.Fprintln(i.out, value.String()); err != nil {
		return fmt.Errorf("interpreter: write output: %w", err)
	}
	return nil
}
