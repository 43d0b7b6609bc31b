package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestFileName is the project file looked up by FindManifest.
const ManifestFileName = "minilang.yml"

var (
	ErrManifestNotFound = errors.New("manifest: " + ManifestFileName + " not found")
	ErrNoMain           = errors.New("manifest: no main entry defined")
)

// UndefinedMode selects how reads of unassigned variables behave.
type UndefinedMode string

const (
	UndefinedError UndefinedMode = "error"
	UndefinedZero  UndefinedMode = "zero"
)

// IsValid reports whether the mode is recognised.
func (m UndefinedMode) IsValid() bool {
	switch m {
	case UndefinedError, UndefinedZero:
		return true
	default:
		return false
	}
}

// Manifest represents the parsed contents of minilang.yml.
type Manifest struct {
	Path      string
	Name      string
	Main      string
	Undefined UndefinedMode
	Fixtures  []string
}

// ValidationError aggregates manifest validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "manifest: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("manifest validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// LoadManifest parses minilang.yml from disk, returning a validated manifest.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("manifest: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw manifestFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("manifest: %s is empty", absPath)
		}
		return nil, fmt.Errorf("manifest: parse %s: %w", absPath, err)
	}

	manifest := raw.toManifest(absPath)
	if err := manifest.validate(); err != nil {
		return nil, err
	}
	return manifest, nil
}

// FindManifest walks from start up to the filesystem root and returns the
// path of the first minilang.yml it sees. A start that is not a directory
// is searched from its parent.
func FindManifest(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("manifest: resolve %s: %w", start, err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for {
		candidate := filepath.Join(dir, ManifestFileName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("manifest: stat %s: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrManifestNotFound
		}
		dir = parent
	}
}

func (m *Manifest) validate() error {
	var errs ValidationError
	if m.Name == "" {
		errs.Issues = append(errs.Issues, "name must be provided")
	}
	if m.Undefined != "" && !m.Undefined.IsValid() {
		errs.Issues = append(errs.Issues, fmt.Sprintf("undefined must be %q or %q, got %q", UndefinedError, UndefinedZero, m.Undefined))
	}
	for i, pattern := range m.Fixtures {
		if _, err := filepath.Match(pattern, ""); err != nil {
			errs.Issues = append(errs.Issues, fmt.Sprintf("fixtures[%d]: invalid pattern %q", i, pattern))
		}
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// Dir returns the directory holding the manifest.
func (m *Manifest) Dir() string {
	return filepath.Dir(m.Path)
}

// ResolvePath interprets rel relative to the manifest directory.
func (m *Manifest) ResolvePath(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(m.Dir(), filepath.FromSlash(rel))
}

// MainPath returns the absolute path of the main entry.
func (m *Manifest) MainPath() (string, error) {
	if m == nil || m.Main == "" {
		return "", ErrNoMain
	}
	return m.ResolvePath(m.Main), nil
}

// UndefinedAsZero reports whether unassigned variables read as 0.
func (m *Manifest) UndefinedAsZero() bool {
	return m != nil && m.Undefined == UndefinedZero
}

// FixturePaths expands the fixture globs into a sorted, de-duplicated list.
func (m *Manifest) FixturePaths() ([]string, error) {
	if m == nil {
		return nil, nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, pattern := range m.Fixtures {
		matches, err := filepath.Glob(m.ResolvePath(pattern))
		if err != nil {
			return nil, fmt.Errorf("manifest: fixtures %q: %w", pattern, err)
		}
		for _, match := range matches {
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}
			out = append(out, match)
		}
	}
	sort.Strings(out)
	return out, nil
}

type manifestFile struct {
	Name      string     `yaml:"name"`
	Main      string     `yaml:"main"`
	Undefined string     `yaml:"undefined"`
	Fixtures  stringList `yaml:"fixtures"`
}

type stringList []string

func (mf manifestFile) toManifest(path string) *Manifest {
	return &Manifest{
		Path:      path,
		Name:      strings.TrimSpace(mf.Name),
		Main:      strings.TrimSpace(mf.Main),
		Undefined: UndefinedMode(strings.ToLower(strings.TrimSpace(mf.Undefined))),
		Fixtures:  mf.Fixtures.Clone(),
	}
}

func (l stringList) Clone() []string {
	if len(l) == 0 {
		return nil
	}
	out := make([]string, 0, len(l))
	for _, item := range l {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

// UnmarshalYAML accepts either a single string or a sequence of strings.
func (l *stringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" || strings.TrimSpace(value.Value) == "" {
			*l = nil
			return nil
		}
		*l = stringList{strings.TrimSpace(value.Value)}
		return nil
	case yaml.SequenceNode:
		items := make([]string, 0, len(value.Content))
		for _, node := range value.Content {
			var str string
			if err := node.Decode(&str); err != nil {
				return err
			}
			str = strings.TrimSpace(str)
			if str == "" {
				continue
			}
			items = append(items, str)
		}
		*l = stringList(items)
		return nil
	case yaml.AliasNode:
		return l.UnmarshalYAML(value.Alias)
	case 0:
		*l = nil
		return nil
	default:
		return fmt.Errorf("manifest: expected string or sequence for list but found %s", value.ShortTag())
	}
}
