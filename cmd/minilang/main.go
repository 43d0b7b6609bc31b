package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"minilang/interpreter-go/pkg/driver"
	"minilang/interpreter-go/pkg/fixtures"
	"minilang/interpreter-go/pkg/lexer"
)

const cliToolVersion = "minilang 0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	switch args[0] {
	case "--help", "-h", "help":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "run":
		return runEntry(args[1:])
	case "tokens":
		return runTokens(args[1:])
	case "ast":
		return runAST(args[1:])
	case "test":
		return runTests(args[1:])
	default:
		if looksLikePathCandidate(args[0]) {
			return runEntry(args)
		}
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[0])
		printUsage()
		return 1
	}
}

func runEntry(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	undefined := fs.String("undefined", "", "how unassigned variables read: error or zero (default from minilang.yml, else error)")
	trace := fs.Bool("trace", false, "log each executed statement to stderr")
	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return 1
	}
	if len(positional) > 1 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(positional[1:], " "))
		return 1
	}

	var (
		manifest  *driver.Manifest
		entryPath string
	)
	if len(positional) == 0 {
		manifest, err = loadManifestFrom(".")
		if err != nil {
			if errors.Is(err, driver.ErrManifestNotFound) {
				fmt.Fprintf(os.Stderr, "minilang run requires a source file (%s not found)\n", driver.ManifestFileName)
			} else {
				fmt.Fprintf(os.Stderr, "failed to load manifest: %v\n", err)
			}
			return 1
		}
		entryPath, err = manifest.MainPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "manifest error: %v\n", err)
			return 1
		}
	} else {
		entryPath = positional[0]
		manifest, err = loadManifestFrom(entryPath)
		if err != nil {
			if !errors.Is(err, driver.ErrManifestNotFound) {
				fmt.Fprintf(os.Stderr, "warning: unable to load manifest (%v); using defaults\n", err)
			}
			manifest = nil
		}
	}

	undefinedAsZero := manifest.UndefinedAsZero()
	if *undefined != "" {
		mode := driver.UndefinedMode(strings.ToLower(*undefined))
		if !mode.IsValid() {
			fmt.Fprintf(os.Stderr, "invalid --undefined value %q (want %s or %s)\n", *undefined, driver.UndefinedError, driver.UndefinedZero)
			return 1
		}
		undefinedAsZero = mode == driver.UndefinedZero
	}

	opts := driver.ExecOptions{Stdout: os.Stdout, UndefinedAsZero: undefinedAsZero}
	if *trace {
		opts.Tracer = log.New(os.Stderr, "trace: ", 0)
	}
	return executeEntry(entryPath, opts)
}

func executeEntry(entry string, opts driver.ExecOptions) int {
	program, err := driver.LoadSource(entry)
	if err != nil {
		fmt.Fprintln(os.Stderr, driver.Describe(err))
		return 1
	}
	if _, err := driver.Execute(program, opts); err != nil {
		fmt.Fprintln(os.Stderr, driver.Describe(err))
		return 1
	}
	return 0
}

func runTokens(args []string) int {
	path, ok := singleFileArg("tokens", args)
	if !ok {
		return 1
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", path, err)
		return 1
	}
	tokens, err := lexer.Lex(string(data))
	if err != nil {
		fmt.Fprintln(os.Stderr, driver.Describe(&driver.ProgramError{Path: path, Err: err}))
		return 1
	}
	for _, tok := range tokens {
		fmt.Fprintf(os.Stdout, "%s %s %s\n", tok.Position, tok.Kind, tok.Lexeme)
	}
	return 0
}

func runAST(args []string) int {
	path, ok := singleFileArg("ast", args)
	if !ok {
		return 1
	}
	program, err := driver.LoadSource(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, driver.Describe(err))
		return 1
	}
	if err := writeYAML(os.Stdout, program.Statements); err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode AST: %v\n", err)
		return 1
	}
	return 0
}

func writeYAML(w io.Writer, value interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(value); err != nil {
		return err
	}
	return encoder.Close()
}

func runTests(args []string) int {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	verbose := fs.Bool("v", false, "list passing cases too")
	paths, err := parseInterspersed(fs, args)
	if err != nil {
		return 1
	}

	manifest, err := loadManifestFrom(".")
	if err != nil {
		if len(paths) == 0 || !errors.Is(err, driver.ErrManifestNotFound) {
			fmt.Fprintf(os.Stderr, "failed to load manifest: %v\n", err)
			return 1
		}
		manifest = nil
	}
	if len(paths) == 0 {
		paths, err = manifest.FixturePaths()
		if err != nil {
			fmt.Fprintf(os.Stderr, "manifest error: %v\n", err)
			return 1
		}
		if len(paths) == 0 {
			fmt.Fprintf(os.Stderr, "no fixture suites found (set fixtures in %s or pass suite files)\n", manifest.Path)
			return 1
		}
	}

	opts := fixtures.Options{UndefinedAsZero: manifest.UndefinedAsZero()}
	failed := false
	for _, path := range paths {
		suite, err := fixtures.LoadSuite(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			failed = true
			continue
		}
		report := fixtures.Run(suite, opts)
		for _, res := range report.Results {
			switch {
			case !res.Passed:
				fmt.Fprintf(os.Stdout, "FAIL %s/%s: %s\n", report.Suite, res.Name, res.Detail)
			case *verbose:
				fmt.Fprintf(os.Stdout, "PASS %s/%s\n", report.Suite, res.Name)
			}
		}
		if n := report.Failed(); n > 0 {
			fmt.Fprintf(os.Stdout, "FAIL %s (%d of %d cases failed)\n", report.Suite, n, len(report.Results))
			failed = true
		} else {
			fmt.Fprintf(os.Stdout, "ok   %s (%d cases)\n", report.Suite, len(report.Results))
		}
	}
	if failed {
		return 1
	}
	return 0
}

func singleFileArg(command string, args []string) (string, bool) {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: minilang %s <file.mini>\n", command)
		return "", false
	}
	return args[0], true
}

// parseInterspersed lets flags appear before or after positional arguments.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

func loadManifestFrom(start string) (*driver.Manifest, error) {
	manifestPath, err := driver.FindManifest(start)
	if err != nil {
		return nil, err
	}
	return driver.LoadManifest(manifestPath)
}

func looksLikePathCandidate(arg string) bool {
	if arg == "" {
		return false
	}
	if strings.Contains(arg, string(os.PathSeparator)) {
		return true
	}
	// Support forward/backward slashes regardless of host OS.
	if strings.Contains(arg, "/") || strings.Contains(arg, "\\") {
		return true
	}
	if filepath.Ext(arg) == ".mini" {
		return true
	}
	return strings.HasPrefix(arg, ".")
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  minilang run [file.mini] [--undefined=error|zero] [--trace]")
	fmt.Fprintln(os.Stderr, "  minilang <file.mini>")
	fmt.Fprintln(os.Stderr, "  minilang tokens <file.mini>")
	fmt.Fprintln(os.Stderr, "  minilang ast <file.mini>")
	fmt.Fprintln(os.Stderr, "  minilang test [-v] [suite.yml ...]")
	fmt.Fprintln(os.Stderr, "  minilang version")
}
