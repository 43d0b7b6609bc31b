package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunVersionAndUsage(t *testing.T) {
	code, stdout, _ := captureCLI(t, []string{"version"})
	if code != 0 || strings.TrimSpace(stdout) != cliToolVersion {
		t.Fatalf("version: code %d, stdout %q", code, stdout)
	}
	code, _, stderr := captureCLI(t, []string{"--help"})
	if code != 0 || !strings.Contains(stderr, "Usage:") {
		t.Fatalf("help: code %d, stderr %q", code, stderr)
	}
	code, _, _ = captureCLI(t, nil)
	if code != 1 {
		t.Fatalf("no args: expected exit 1, got %d", code)
	}
	code, _, stderr = captureCLI(t, []string{"frobnicate"})
	if code != 1 || !strings.Contains(stderr, `unknown command "frobnicate"`) {
		t.Fatalf("unknown command: code %d, stderr %q", code, stderr)
	}
}

func TestRunSourceFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.mini")
	writeFile(t, path, "a = 0;\nwhile (a - 5) { a = a + 1; }\nprint a;\n")

	code, stdout, stderr := captureCLI(t, []string{"run", path})
	if code != 0 {
		t.Fatalf("run exited %d: %s", code, stderr)
	}
	if stdout != "5\n" {
		t.Fatalf("unexpected stdout %q", stdout)
	}

	code, stdout, _ = captureCLI(t, []string{path})
	if code != 0 || stdout != "5\n" {
		t.Fatalf("direct invocation: code %d, stdout %q", code, stdout)
	}
}

func TestRunReportsDiagnostics(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"a = 1;\nb = a # 2;\n":   ":2:7: lex error: unexpected character '#'",
		"foo = 42\nprint foo;\n": `:2:1: parse error: expected ";" but found "print"`,
		"y = 5 / 0;\n":           ":1:7: runtime error: division by zero",
	}
	i := 0
	for source, want := range cases {
		i++
		path := filepath.Join(dir, "case"+strings.Repeat("x", i)+".mini")
		writeFile(t, path, source)
		code, _, stderr := captureCLI(t, []string{"run", path})
		if code != 1 {
			t.Fatalf("%q: expected exit 1, got %d", source, code)
		}
		if !strings.Contains(stderr, path+want) {
			t.Fatalf("%q: stderr %q missing %q", source, stderr, path+want)
		}
	}
}

func TestRunMissingFile(t *testing.T) {
	code, _, stderr := captureCLI(t, []string{"run", filepath.Join(t.TempDir(), "absent.mini")})
	if code != 1 || !strings.Contains(stderr, "absent.mini") {
		t.Fatalf("code %d, stderr %q", code, stderr)
	}
	if strings.Contains(stderr, "warning") {
		t.Fatalf("missing file must not trigger manifest warnings: %q", stderr)
	}
}

func TestRunUndefinedFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.mini")
	writeFile(t, path, "print missing + 2;\n")

	code, _, stderr := captureCLI(t, []string{"run", path})
	if code != 1 || !strings.Contains(stderr, `undefined variable "missing"`) {
		t.Fatalf("default mode: code %d, stderr %q", code, stderr)
	}
	code, stdout, stderr := captureCLI(t, []string{"run", path, "--undefined=zero"})
	if code != 0 || stdout != "2\n" {
		t.Fatalf("zero mode: code %d, stdout %q, stderr %q", code, stdout, stderr)
	}
	code, _, stderr = captureCLI(t, []string{"run", "--undefined", "maybe", path})
	if code != 1 || !strings.Contains(stderr, `invalid --undefined value "maybe"`) {
		t.Fatalf("invalid mode: code %d, stderr %q", code, stderr)
	}
}

func TestRunTrace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.mini")
	writeFile(t, path, "x = 1;\nprint x;\n")
	code, stdout, stderr := captureCLI(t, []string{"run", "--trace", path})
	if code != 0 || stdout != "1\n" {
		t.Fatalf("code %d, stdout %q", code, stdout)
	}
	if !strings.Contains(stderr, "trace: AssignmentExpression at 1:3") || !strings.Contains(stderr, "trace: PrintStatement at 2:1") {
		t.Fatalf("unexpected trace output %q", stderr)
	}
}

func TestRunUsesManifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "minilang.yml"), "name: demo\nmain: src/main.mini\nundefined: zero\n")
	writeFile(t, filepath.Join(dir, "src", "main.mini"), "print nothing;\nprint 7;\n")
	chdir(t, dir)

	code, stdout, stderr := captureCLI(t, []string{"run"})
	if code != 0 {
		t.Fatalf("run exited %d: %s", code, stderr)
	}
	if stdout != "0\n7\n" {
		t.Fatalf("unexpected stdout %q", stdout)
	}

	code, _, stderr = captureCLI(t, []string{"run", "--undefined=error"})
	if code != 1 || !strings.Contains(stderr, "undefined variable") {
		t.Fatalf("flag must override manifest: code %d, stderr %q", code, stderr)
	}
}

func TestRunWithoutManifestOrFile(t *testing.T) {
	chdir(t, t.TempDir())
	code, _, stderr := captureCLI(t, []string{"run"})
	if code != 1 || !strings.Contains(stderr, "requires a source file") {
		t.Skipf("ancestor manifest present or unexpected output: code %d, stderr %q", code, stderr)
	}
}

func TestRunRejectsExtraArguments(t *testing.T) {
	code, _, stderr := captureCLI(t, []string{"run", "a.mini", "b.mini"})
	if code != 1 || !strings.Contains(stderr, "unexpected arguments: b.mini") {
		t.Fatalf("code %d, stderr %q", code, stderr)
	}
}

func TestTokensCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.mini")
	writeFile(t, path, "foo = 42;\nprint foo;\n")
	code, stdout, stderr := captureCLI(t, []string{"tokens", path})
	if code != 0 {
		t.Fatalf("tokens exited %d: %s", code, stderr)
	}
	want := strings.Join([]string{
		"1:1 identifier foo",
		"1:5 operator =",
		"1:7 number 42",
		"1:9 semicolon ;",
		"2:1 keyword print",
		"2:7 identifier foo",
		"2:10 semicolon ;",
	}, "\n") + "\n"
	if stdout != want {
		t.Fatalf("unexpected tokens:\n%s", stdout)
	}

	writeFile(t, path, "x = $;\n")
	code, _, stderr = captureCLI(t, []string{"tokens", path})
	if code != 1 || !strings.Contains(stderr, path+":1:5: lex error") {
		t.Fatalf("code %d, stderr %q", code, stderr)
	}
}

func TestASTCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.mini")
	writeFile(t, path, "foo = 42;\nprint foo;\n")
	code, stdout, stderr := captureCLI(t, []string{"ast", path})
	if code != 0 {
		t.Fatalf("ast exited %d: %s", code, stderr)
	}
	for _, fragment := range []string{
		"- type: AssignmentExpression",
		"    type: NumberLiteral\n    value: 42",
		"- type: PrintStatement",
		"    name: foo",
	} {
		if !strings.Contains(stdout, fragment) {
			t.Fatalf("ast output missing %q:\n%s", fragment, stdout)
		}
	}

	code, _, _ = captureCLI(t, []string{"ast"})
	if code != 1 {
		t.Fatalf("ast without file: expected exit 1, got %d", code)
	}
}

func TestTestCommand(t *testing.T) {
	conformance := filepath.Join("..", "..", "testdata", "conformance.yml")
	code, stdout, stderr := captureCLI(t, []string{"test", conformance})
	if code != 0 {
		t.Fatalf("test exited %d:\n%s%s", code, stdout, stderr)
	}
	if !strings.HasPrefix(stdout, "ok   conformance (") {
		t.Fatalf("unexpected summary %q", stdout)
	}

	dir := t.TempDir()
	failing := filepath.Join(dir, "failing.yml")
	writeFile(t, failing, "name: failing\ncases:\n  - name: off by one\n    source: print 1;\n    stdout: [\"2\"]\n")
	code, stdout, _ = captureCLI(t, []string{"test", "-v", failing, conformance})
	if code != 1 {
		t.Fatalf("expected exit 1 for failing suite, got %d", code)
	}
	if !strings.Contains(stdout, `FAIL failing/off by one: output line 1: expected "2", got "1"`) {
		t.Fatalf("missing failure line:\n%s", stdout)
	}
	if !strings.Contains(stdout, "PASS conformance/while loop counts to five") {
		t.Fatalf("verbose mode must list passing cases:\n%s", stdout)
	}
}

func TestTestCommandUsesManifestFixtures(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "minilang.yml"), "name: demo\nfixtures: [suites/*.yml]\n")
	writeFile(t, filepath.Join(dir, "suites", "basic.yml"), "cases:\n  - name: sum\n    source: print 2 + 3;\n    stdout: [\"5\"]\n")
	chdir(t, dir)

	code, stdout, stderr := captureCLI(t, []string{"test"})
	if code != 0 {
		t.Fatalf("test exited %d:\n%s%s", code, stdout, stderr)
	}
	if stdout != "ok   basic (1 cases)\n" {
		t.Fatalf("unexpected output %q", stdout)
	}
}

func TestLooksLikePathCandidate(t *testing.T) {
	cases := map[string]bool{
		"main.mini":     true,
		"./prog":        true,
		"src/prog":      true,
		"run":           false,
		"":              false,
		"program.other": false,
	}
	for arg, want := range cases {
		if got := looksLikePathCandidate(arg); got != want {
			t.Fatalf("looksLikePathCandidate(%q) = %v, want %v", arg, got, want)
		}
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	t.Cleanup(func() {
		if chdirErr := os.Chdir(oldWD); chdirErr != nil {
			t.Fatalf("restore working directory: %v", chdirErr)
		}
	})
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
}

func captureCLI(t *testing.T, args []string) (int, string, string) {
	t.Helper()

	stdout := os.Stdout
	stderr := os.Stderr

	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatalf("stdout pipe: %v", err)
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		t.Fatalf("stderr pipe: %v", err)
	}

	os.Stdout = wOut
	os.Stderr = wErr

	code := run(args)

	if err := wOut.Close(); err != nil {
		t.Fatalf("stdout close: %v", err)
	}
	if err := wErr.Close(); err != nil {
		t.Fatalf("stderr close: %v", err)
	}

	os.Stdout = stdout
	os.Stderr = stderr

	outBytes, err := io.ReadAll(rOut)
	if err != nil {
		t.Fatalf("stdout read: %v", err)
	}
	errBytes, err := io.ReadAll(rErr)
	if err != nil {
		t.Fatalf("stderr read: %v", err)
	}

	if err := rOut.Close(); err != nil {
		t.Fatalf("stdout pipe close: %v", err)
	}
	if err := rErr.Close(); err != nil {
		t.Fatalf("stderr pipe close: %v", err)
	}

	return code, string(outBytes), string(errBytes)
}

func TestRunBundledExamples(t *testing.T) {
	cases := map[string]string{
		"hello.mini":     "42\n",
		"countdown.mini": "5\n4\n3\n2\n1\n",
	}
	for name, want := range cases {
		path := filepath.Join("..", "..", "examples", name)
		code, stdout, stderr := captureCLI(t, []string{"run", path})
		if code != 0 {
			t.Fatalf("%s exited %d: %s", name, code, stderr)
		}
		if stdout != want {
			t.Fatalf("%s: unexpected stdout %q", name, stdout)
		}
	}
}
