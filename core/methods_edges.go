// File: methods_edges.go
// Role: Authored adjacency and derived edge synthesis.
//
// Determinism:
//   - Neighbors() returns the adjacency list in authored order.
//   - SynthesizeEdges() emits edges in vertex declaration order, then
//     adjacency order, so the same authoring always yields the same edge IDs.
package core

import "fmt"

// edgeNameFormat names a synthesized edge after its endpoints.
const edgeNameFormat = "Edge %s-%s"

// Connect appends to to the adjacency list of from.
// Adjacency is asymmetric: Connect(a, b) does not make a a neighbor of b.
// Complexity: O(1) amortized.
func (g *Graph) Connect(from, to VertexID) error {
	if !g.HasVertex(from) {
		return fmt.Errorf("%w: from=%d", ErrVertexNotFound, from)
	}
	if !g.HasVertex(to) {
		return fmt.Errorf("%w: to=%d", ErrVertexNotFound, to)
	}
	v := g.vertices[from]
	v.Adjacency = append(v.Adjacency, to)

	return nil
}

// Neighbors returns the authored adjacency list of id.
// A nil or empty adjacency list yields an empty result, never an error.
// The returned slice is a copy.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id VertexID) ([]VertexID, error) {
	v, err := g.Vertex(id)
	if err != nil {
		return nil, err
	}
	out := make([]VertexID, len(v.Adjacency))
	copy(out, v.Adjacency)

	return out, nil
}

// SynthesizeEdges rebuilds the edge list from the adjacency lists.
//
// Implementation:
//   - Stage 1: Drop any previously synthesized edges.
//   - Stage 2: Walk vertices in declaration order and each adjacency list in
//     authored order.
//   - Stage 3: Create an edge for each unordered pair not seen yet, so a pair
//     declared from both sides (or declared twice) yields exactly one edge.
//
// Complexity: O(V + E) with O(E) extra space for the pair index.
func (g *Graph) SynthesizeEdges() []Edge {
	g.edges = g.edges[:0]
	g.pairs = make(map[pairKey]int)

	for _, v := range g.vertices {
		for _, nbr := range v.Adjacency {
			key := newPairKey(v.ID, nbr)
			if _, seen := g.pairs[key]; seen {
				continue
			}
			e := Edge{
				ID:   len(g.edges),
				Name: fmt.Sprintf(edgeNameFormat, v.Name, g.vertices[nbr].Name),
				A:    v.ID,
				B:    nbr,
			}
			g.pairs[key] = e.ID
			g.edges = append(g.edges, e)
		}
	}

	return g.Edges()
}

// Edges returns a copy of the synthesized edges in synthesis order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// HasEdge reports whether an edge joins a and b, in either direction.
func (g *Graph) HasEdge(a, b VertexID) bool {
	_, ok := g.pairs[newPairKey(a, b)]

	return ok
}
