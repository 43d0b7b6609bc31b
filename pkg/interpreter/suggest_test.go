package interpreter

import (
	"testing"

	"minilang/interpreter-go/pkg/runtime"
)

func TestSuggestName(t *testing.T) {
	env := runtime.NewEnvironment()
	for _, name := range []string{"ac", "ab", "counter", "total"} {
		env.Define(name, runtime.Zero())
	}
	cases := map[string]string{
		"aa":      "ab",
		"countr":  "counter",
		"totals":  "total",
		"x":       "",
		"zzzzzzz": "",
	}
	for name, want := range cases {
		if got := suggestName(name, env); got != want {
			t.Fatalf("suggestName(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestSuggestNameEmptyEnvironment(t *testing.T) {
	if got := suggestName("anything", runtime.NewEnvironment()); got != "" {
		t.Fatalf("expected no suggestion, got %q", got)
	}
}
