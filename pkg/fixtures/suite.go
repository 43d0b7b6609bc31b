package fixtures

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"minilang/interpreter-go/pkg/driver"
)

// Suite is a named list of conformance cases loaded from YAML.
type Suite struct {
	Path  string `yaml:"-"`
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// Case runs Source and compares its printed lines with Stdout. When Error
// is set the run must fail the way it describes; Stdout is then checked
// only if given.
type Case struct {
	Name      string         `yaml:"name"`
	Source    string         `yaml:"source"`
	Undefined string         `yaml:"undefined,omitempty"`
	Stdout    []string       `yaml:"stdout,omitempty"`
	Error     *ExpectedError `yaml:"error,omitempty"`
}

// ExpectedError describes a failure. Line and Column are one-based and
// optional.
type ExpectedError struct {
	Kind     driver.Stage `yaml:"kind"`
	Line     int          `yaml:"line,omitempty"`
	Column   int          `yaml:"column,omitempty"`
	Contains string       `yaml:"contains,omitempty"`
}

// LoadSuite reads and validates a suite file.
func LoadSuite(path string) (*Suite, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixtures: open %s: %w", path, err)
	}
	defer file.Close()
	suite, err := DecodeSuite(file)
	if err != nil {
		return nil, fmt.Errorf("fixtures: %s: %w", path, err)
	}
	suite.Path = path
	if suite.Name == "" {
		suite.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return suite, nil
}

// DecodeSuite decodes a suite from r. Unknown keys are rejected.
func DecodeSuite(r io.Reader) (*Suite, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var suite Suite
	if err := decoder.Decode(&suite); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("suite is empty")
		}
		return nil, fmt.Errorf("parse suite: %w", err)
	}
	if err := suite.validate(); err != nil {
		return nil, err
	}
	return &suite, nil
}

func (s *Suite) validate() error {
	var errs driver.ValidationError
	if len(s.Cases) == 0 {
		errs.Issues = append(errs.Issues, "cases must not be empty")
	}
	seen := make(map[string]struct{}, len(s.Cases))
	for i, c := range s.Cases {
		label := fmt.Sprintf("cases[%d]", i)
		if c.Name == "" {
			errs.Issues = append(errs.Issues, label+": name must be provided")
		} else if _, dup := seen[c.Name]; dup {
			errs.Issues = append(errs.Issues, fmt.Sprintf("%s: duplicate name %q", label, c.Name))
		} else {
			seen[c.Name] = struct{}{}
		}
		if c.Undefined != "" && !driver.UndefinedMode(c.Undefined).IsValid() {
			errs.Issues = append(errs.Issues, fmt.Sprintf("%s: undefined must be %q or %q", label, driver.UndefinedError, driver.UndefinedZero))
		}
		if c.Error != nil {
			switch c.Error.Kind {
			case driver.StageLex, driver.StageParse, driver.StageRuntime:
			default:
				errs.Issues = append(errs.Issues, fmt.Sprintf("%s: error kind must be lex, parse or runtime, got %q", label, c.Error.Kind))
			}
			if c.Error.Line < 0 || c.Error.Column < 0 {
				errs.Issues = append(errs.Issues, label+": error position must not be negative")
			}
		}
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}
