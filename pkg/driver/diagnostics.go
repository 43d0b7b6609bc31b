package driver

import (
	"errors"
	"fmt"
	"strings"

	"minilang/interpreter-go/pkg/interpreter"
	"minilang/interpreter-go/pkg/lexer"
	"minilang/interpreter-go/pkg/parser"
)

// Stage names the pipeline step an error came from.
type Stage string

const (
	StageLex      Stage = "lex"
	StageParse    Stage = "parse"
	StageRuntime  Stage = "runtime"
	StageInternal Stage = "internal"
	StageUnknown  Stage = ""
)

// DiagnosticLocation references a source position. Line and Column are
// one-based; zero means unknown.
type DiagnosticLocation struct {
	Path   string
	Line   int
	Column int
}

// Diagnostic is the structured form of a pipeline error.
type Diagnostic struct {
	Stage    Stage
	Message  string
	Location DiagnosticLocation
}

// StageOf classifies err by the pipeline step that produced it.
func StageOf(err error) Stage {
	var (
		lexErr      *lexer.LexError
		parseErr    *parser.ParseError
		runtimeErr  *interpreter.RuntimeError
		internalErr *interpreter.InternalError
	)
	switch {
	case errors.As(err, &lexErr):
		return StageLex
	case errors.As(err, &parseErr):
		return StageParse
	case errors.As(err, &runtimeErr):
		return StageRuntime
	case errors.As(err, &internalErr):
		return StageInternal
	default:
		return StageUnknown
	}
}

// Diagnose converts err into a Diagnostic. ok is false when err did not come
// from the lexer, parser or interpreter.
func Diagnose(err error) (Diagnostic, bool) {
	var diag Diagnostic
	var programErr *ProgramError
	if errors.As(err, &programErr) {
		diag.Location.Path = programErr.Path
	}

	var (
		lexErr      *lexer.LexError
		parseErr    *parser.ParseError
		runtimeErr  *interpreter.RuntimeError
		internalErr *interpreter.InternalError
	)
	switch {
	case errors.As(err, &lexErr):
		diag.Stage = StageLex
		diag.Message = lexErr.Detail()
		diag.Location.setPosition(lexErr.Position)
	case errors.As(err, &parseErr):
		diag.Stage = StageParse
		diag.Message = parseErr.Detail()
		diag.Location.setPosition(parseErr.Position)
	case errors.As(err, &runtimeErr):
		diag.Stage = StageRuntime
		diag.Message = runtimeErr.Detail()
		diag.Location.setPosition(runtimeErr.Position)
	case errors.As(err, &internalErr):
		diag.Stage = StageInternal
		diag.Message = internalErr.Error()
	default:
		return Diagnostic{}, false
	}
	return diag, true
}

func (l *DiagnosticLocation) setPosition(pos lexer.Position) {
	l.Line = pos.Row + 1
	l.Column = pos.Column + 1
}

// Describe formats err for CLI output, e.g.
// `prog.mini:2:7: lex error: unexpected character '#'`.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	diag, ok := Diagnose(err)
	if !ok {
		return err.Error()
	}
	return DescribeDiagnostic(diag)
}

// DescribeDiagnostic formats a diagnostic for CLI output.
func DescribeDiagnostic(diag Diagnostic) string {
	message := strings.TrimSpace(diag.Message)
	if diag.Stage != StageInternal {
		message = fmt.Sprintf("%s error: %s", diag.Stage, message)
	}
	if location := formatDiagnosticLocation(diag.Location); location != "" {
		return fmt.Sprintf("%s: %s", location, message)
	}
	return message
}

func formatDiagnosticLocation(loc DiagnosticLocation) string {
	path := strings.TrimSpace(loc.Path)
	line := loc.Line
	column := loc.Column
	switch {
	case path != "" && line > 0 && column > 0:
		return fmt.Sprintf("%s:%d:%d", path, line, column)
	case path != "" && line > 0:
		return fmt.Sprintf("%s:%d", path, line)
	case path != "":
		return path
	case line > 0 && column > 0:
		return fmt.Sprintf("line %d, column %d", line, column)
	case line > 0:
		return fmt.Sprintf("line %d", line)
	default:
		return ""
	}
}
