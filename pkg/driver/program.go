package driver

import (
	"fmt"
	"io"
	"log"
	"os"

	"minilang/interpreter-go/pkg/ast"
	"minilang/interpreter-go/pkg/interpreter"
	"minilang/interpreter-go/pkg/lexer"
	"minilang/interpreter-go/pkg/parser"
	"minilang/interpreter-go/pkg/runtime"
)

// Program is a source file taken through lexing and parsing.
type Program struct {
	Path       string
	Source     string
	Tokens     []lexer.Token
	Statements []ast.Statement
}

// ProgramError attaches the source path to a lex, parse or runtime error.
type ProgramError struct {
	Path string
	Err  error
}

func (e *ProgramError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ProgramError) Unwrap() error {
	return e.Err
}

// ExecOptions configures a single run.
type ExecOptions struct {
	Stdout          io.Writer
	UndefinedAsZero bool
	Tracer          *log.Logger
}

// Compile lexes and parses source. path is used for diagnostics only.
func Compile(path, source string) (*Program, error) {
	tokens, err := lexer.Lex(source)
	if err != nil {
		return nil, &ProgramError{Path: path, Err: err}
	}
	statements, err := parser.Parse(tokens)
	if err != nil {
		return nil, &ProgramError{Path: path, Err: err}
	}
	return &Program{Path: path, Source: source, Tokens: tokens, Statements: statements}, nil
}

// LoadSource reads and compiles a source file.
func LoadSource(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("driver: read %s: %w", path, err)
	}
	return Compile(path, string(data))
}

// Execute runs program against a fresh environment and returns it.
func Execute(program *Program, opts ExecOptions) (*runtime.Environment, error) {
	if program == nil {
		return nil, fmt.Errorf("driver: nil program")
	}
	env := runtime.NewEnvironment()
	if err := interpreter.New(opts.interpreterOptions()...).Interpret(program.Statements, env); err != nil {
		return env, &ProgramError{Path: program.Path, Err: err}
	}
	return env, nil
}

// Run compiles and executes source in one step.
func Run(path, source string, opts ExecOptions) (*runtime.Environment, error) {
	program, err := Compile(path, source)
	if err != nil {
		return nil, err
	}
	return Execute(program, opts)
}

func (o ExecOptions) interpreterOptions() []interpreter.Option {
	out := o.Stdout
	if out == nil {
		out = os.Stdout
	}
	opts := []interpreter.Option{interpreter.WithOutput(out)}
	if o.UndefinedAsZero {
		opts = append(opts, interpreter.WithUndefinedAsZero())
	}
	if o.Tracer != nil {
		opts = append(opts, interpreter.WithTracer(o.Tracer))
	}
	return opts
}
