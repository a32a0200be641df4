// Package builder provides deterministic fixture graphs for the walker:
// paths, cycles, stars, wheels, complete graphs, grids and random sparse
// graphs, each laid out in scene space so the canvas can draw them.
//
// The package offers the following key components:
//
//   - Constructor: a closure that adds one topology to a core.Graph.
//   - BuildGraph:  creates a graph and applies constructors in order.
//   - BuilderOption / builderConfig: ID scheme, spacing, priorities,
//     symmetric adjacency, RNG.
//   - Vertex-ID schemes (IDFn): DefaultIDFn ("0","1",…),
//     LetterIDFn ("A",…,"Z","AA",…), PrefixIDFn("v") ("v0","v1",…).
//   - Shape: resolves a shape name ("path", "grid", …) to a Constructor.
//
// Composition
//
//	Constructors may be chained. Each one numbers its vertices after the
//	ones already present and lays itself out to the right of the existing
//	drawing, so BuildGraph(nil, Path(3), Cycle(4)) yields one graph with two
//	components, handy for exercising the walker's continuation.
//
// Adjacency
//
//	By default every link is declared from both endpoints (symmetric). With
//	WithSymmetric(false) only the endpoint that comes first in link order
//	lists the other, which is how a hand-authored scene with one-sided adjacency looks.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name. Option constructors panic on meaningless input.
package builder
