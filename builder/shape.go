package builder

import (
	"fmt"
	"sort"
	"strings"
)

// defaultRandomP is the link probability of the "random" shape.
const defaultRandomP = 0.3

// shapes maps CLI shape names to constructor factories of one size argument.
var shapes = map[string]func(size int) Constructor{
	"path":     Path,
	"cycle":    Cycle,
	"star":     Star,
	"wheel":    Wheel,
	"complete": Complete,
	"grid":     func(size int) Constructor { return Grid(size, size) },
	"random":   func(size int) Constructor { return RandomSparse(size, defaultRandomP) },
}

// Shape resolves a shape name (case-insensitive) to a Constructor of the
// given size. "grid" builds size×size; "random" needs WithSeed or WithRand.
// Returns ErrUnknownShape for unrecognized names. Size is validated when
// the constructor runs.
func Shape(name string, size int) (Constructor, error) {
	fn, ok := shapes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownShape, name, strings.Join(Shapes(), ", "))
	}

	return fn(size), nil
}

// Shapes returns the recognized shape names, sorted.
func Shapes() []string {
	out := make([]string, 0, len(shapes))
	for name := range shapes {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
