package interpreter

import (
	"github.com/agnivade/levenshtein"

	"minilang/interpreter-go/pkg/runtime"
)

// suggestName returns the bound name closest to name, or "" when nothing is
// within half of name's length in edits. Ties go to the alphabetically first
// candidate.
func suggestName(name string, env *runtime.Environment) string {
	limit := len(name) / 2
	if limit < 1 {
		limit = 1
	}
	best := ""
	bestDistance := limit + 1
	for _, candidate := range env.Keys() {
		if candidate == name {
			continue
		}
		if d := levenshtein.ComputeDistance(name, candidate); d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}
	return best
}
