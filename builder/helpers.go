// Package builder: shared helpers for constructors.
//
// Every constructor follows the same three stages:
//   - validate parameters (no partial work on invalid input);
//   - place: add vertices with keys cfg.idFn(base+i) at laid-out positions;
//   - link: declare adjacency in a stable, documented order.
package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphwalk/core"
)

// placement is a batch of vertices added by one constructor.
type placement struct {
	base core.VertexID // ID of the first vertex of the batch
	n    int
}

// id returns the VertexID of the batch-local index i.
func (p placement) id(i int) core.VertexID { return p.base + core.VertexID(i) }

// place adds n vertices at the given layout positions, shifted so the batch
// sits to the right of anything already in g.
// Complexity: O(n + V) for the bounding-box scan.
func place(g *core.Graph, cfg builderConfig, method string, layout []core.Position) (placement, error) {
	base := g.Len()
	shift := core.Position{}
	if base > 0 {
		shift.X = rightEdge(g) + cfg.spacing - leftEdge(layout)
	}

	for i, pos := range layout {
		idx := base + i
		key := cfg.idFn(idx)
		name := ""
		if cfg.named {
			name = key
		}
		if _, err := g.AddVertex(key, name, pos.Add(shift), core.WithPriority(cfg.priority(idx))); err != nil {
			return placement{}, fmt.Errorf("%s: AddVertex(%s): %w: %w", method, key, err, ErrConstructFailed)
		}
	}

	return placement{base: core.VertexID(base), n: len(layout)}, nil
}

// link declares b as a neighbor of a and, when symmetric, a as a neighbor of b.
func link(g *core.Graph, cfg builderConfig, method string, a, b core.VertexID) error {
	if err := g.Connect(a, b); err != nil {
		return fmt.Errorf("%s: Connect(%d→%d): %w: %w", method, a, b, err, ErrConstructFailed)
	}
	if !cfg.symmetric {
		return nil
	}
	if err := g.Connect(b, a); err != nil {
		return fmt.Errorf("%s: Connect(%d→%d): %w: %w", method, b, a, err, ErrConstructFailed)
	}

	return nil
}

// rightEdge returns the largest X among g's vertices.
func rightEdge(g *core.Graph) float64 {
	maxX := math.Inf(-1)
	for _, id := range g.Vertices() {
		maxX = math.Max(maxX, g.Position(id).X)
	}

	return maxX
}

// leftEdge returns the smallest X in layout, or 0 for an empty layout.
func leftEdge(layout []core.Position) float64 {
	if len(layout) == 0 {
		return 0
	}
	minX := math.Inf(1)
	for _, p := range layout {
		minX = math.Min(minX, p.X)
	}

	return minX
}

// ring lays out n points on a circle whose chord between neighbors is about
// spacing, starting at the top and running clockwise.
func ring(n int, spacing float64) []core.Position {
	out := make([]core.Position, n)
	if n == 1 {
		return out
	}
	r := spacing / (2 * math.Sin(math.Pi/float64(n)))
	for i := range out {
		theta := math.Pi/2 - 2*math.Pi*float64(i)/float64(n)
		out[i] = core.Position{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
	}

	return out
}
