package fixtures

import (
	"bytes"
	"fmt"
	"strings"

	"minilang/interpreter-go/pkg/driver"
)

// Options applies to every case of a run. A case's own undefined setting
// takes precedence.
type Options struct {
	UndefinedAsZero bool
}

// Result is the outcome of one case. Detail explains a failure.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Report collects results in suite order.
type Report struct {
	Suite   string
	Results []Result
}

func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed {
			n++
		}
	}
	return n
}

func (r Report) Passed() int {
	return len(r.Results) - r.Failed()
}

// Run executes the cases one at a time, each against a fresh environment
// and output buffer.
func Run(suite *Suite, opts Options) Report {
	report := Report{Suite: suite.Name}
	for _, c := range suite.Cases {
		report.Results = append(report.Results, runCase(suite, c, opts))
	}
	return report
}

func runCase(suite *Suite, c Case, opts Options) Result {
	undefinedAsZero := opts.UndefinedAsZero
	if c.Undefined != "" {
		undefinedAsZero = driver.UndefinedMode(c.Undefined) == driver.UndefinedZero
	}
	var stdout bytes.Buffer
	_, err := driver.Run(casePath(suite, c), c.Source, driver.ExecOptions{
		Stdout:          &stdout,
		UndefinedAsZero: undefinedAsZero,
	})
	result := Result{Name: c.Name, Passed: true}
	if detail := checkError(c.Error, err); detail != "" {
		return result.fail(detail)
	}
	if c.Error == nil || c.Stdout != nil {
		if detail := checkStdout(c.Stdout, stdout.String()); detail != "" {
			return result.fail(detail)
		}
	}
	return result
}

func (r Result) fail(detail string) Result {
	r.Passed = false
	r.Detail = detail
	return r
}

func casePath(suite *Suite, c Case) string {
	if suite.Name == "" {
		return c.Name
	}
	return suite.Name + "/" + c.Name
}

func checkError(expected *ExpectedError, err error) string {
	if expected == nil {
		if err != nil {
			return "unexpected error: " + driver.Describe(err)
		}
		return ""
	}
	if err == nil {
		return fmt.Sprintf("expected %s error, run succeeded", expected.Kind)
	}
	diag, ok := driver.Diagnose(err)
	if !ok || diag.Stage != expected.Kind {
		return fmt.Sprintf("expected %s error, got: %s", expected.Kind, driver.Describe(err))
	}
	if expected.Line != 0 && diag.Location.Line != expected.Line {
		return fmt.Sprintf("expected error on line %d, got %d", expected.Line, diag.Location.Line)
	}
	if expected.Column != 0 && diag.Location.Column != expected.Column {
		return fmt.Sprintf("expected error at column %d, got %d", expected.Column, diag.Location.Column)
	}
	if expected.Contains != "" && !strings.Contains(diag.Message, expected.Contains) {
		return fmt.Sprintf("expected error containing %q, got %q", expected.Contains, diag.Message)
	}
	return ""
}

func checkStdout(expected []string, got string) string {
	lines := splitLines(got)
	if len(lines) != len(expected) {
		return fmt.Sprintf("expected %d output lines %q, got %d %q", len(expected), expected, len(lines), lines)
	}
	for i := range expected {
		if lines[i] != expected[i] {
			return fmt.Sprintf("output line %d: expected %q, got %q", i+1, expected[i], lines[i])
		}
	}
	return ""
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
