package driver

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadManifestBasic(t *testing.T) {
	path := writeManifest(t, `
name: demo
main: src/main.mini
undefined: Zero
fixtures:
  - testdata/*.yml
  - " "
`)

	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}
	if got, want := manifest.Name, "demo"; got != want {
		t.Fatalf("Name = %q, want %q", got, want)
	}
	if !manifest.UndefinedAsZero() {
		t.Fatalf("expected undefined mode zero, got %q", manifest.Undefined)
	}
	if got := strings.Join(manifest.Fixtures, ","); got != "testdata/*.yml" {
		t.Fatalf("Fixtures unexpected: %#v", manifest.Fixtures)
	}
	mainPath, err := manifest.MainPath()
	if err != nil {
		t.Fatalf("MainPath returned error: %v", err)
	}
	if want := filepath.Join(filepath.Dir(path), "src", "main.mini"); mainPath != want {
		t.Fatalf("MainPath = %q, want %q", mainPath, want)
	}
}

func TestLoadManifestFixturesScalar(t *testing.T) {
	path := writeManifest(t, `
name: demo
fixtures: suites/*.yml
`)
	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}
	if len(manifest.Fixtures) != 1 || manifest.Fixtures[0] != "suites/*.yml" {
		t.Fatalf("Fixtures unexpected: %#v", manifest.Fixtures)
	}
	if manifest.UndefinedAsZero() {
		t.Fatalf("undefined mode must default to error")
	}
	if _, err := manifest.MainPath(); !errors.Is(err, ErrNoMain) {
		t.Fatalf("expected ErrNoMain, got %v", err)
	}
}

func TestLoadManifestValidation(t *testing.T) {
	path := writeManifest(t, `
main: main.mini
undefined: maybe
fixtures: ["[bad"]
`)
	_, err := LoadManifest(path)
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(validation.Issues) != 3 {
		t.Fatalf("expected 3 issues, got %#v", validation.Issues)
	}
	if !strings.Contains(err.Error(), "name must be provided") {
		t.Fatalf("missing name issue in %q", err.Error())
	}
}

func TestLoadManifestRejectsUnknownFields(t *testing.T) {
	path := writeManifest(t, `
name: demo
version: 1.0
`)
	if _, err := LoadManifest(path); err == nil || !strings.Contains(err.Error(), "version") {
		t.Fatalf("expected unknown field error, got %v", err)
	}
}

func TestLoadManifestEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), ManifestFileName)
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	if _, err := LoadManifest(path); err == nil || !strings.Contains(err.Error(), "is empty") {
		t.Fatalf("expected empty manifest error, got %v", err)
	}
}

func TestFindManifestWalksUp(t *testing.T) {
	path := writeManifest(t, "name: demo")
	nested := filepath.Join(filepath.Dir(path), "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	found, err := FindManifest(nested)
	if err != nil {
		t.Fatalf("FindManifest returned error: %v", err)
	}
	if found != path {
		t.Fatalf("FindManifest = %q, want %q", found, path)
	}
}

func TestFindManifestNotFound(t *testing.T) {
	// The temp dir's ancestors are not expected to hold a manifest.
	if _, err := FindManifest(t.TempDir()); !errors.Is(err, ErrManifestNotFound) {
		t.Skipf("ancestor manifest present or unexpected error: %v", err)
	}
}

func TestManifestFixturePaths(t *testing.T) {
	path := writeManifest(t, `
name: demo
fixtures: [suites/*.yml, suites/a.yml]
`)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(filepath.Join(dir, "suites"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, name := range []string{"b.yml", "a.yml", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, "suites", name), []byte("name: x\n"), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}
	paths, err := manifest.FixturePaths()
	if err != nil {
		t.Fatalf("FixturePaths returned error: %v", err)
	}
	want := []string{filepath.Join(dir, "suites", "a.yml"), filepath.Join(dir, "suites", "b.yml")}
	if strings.Join(paths, ",") != strings.Join(want, ",") {
		t.Fatalf("FixturePaths = %v, want %v", paths, want)
	}
}

func writeManifest(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestFileName)
	if err := os.WriteFile(path, []byte(strings.TrimSpace(contents)+"\n"), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}
