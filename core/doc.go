// Package core provides the scene graph that traversal runs over.
//
// A Graph G = (V, A) is an ordered arena of vertices V, each carrying an
// authored adjacency list. Adjacency is asymmetric unless authored
// symmetrically. Edges are not authored: SynthesizeEdges derives them once
// per initialization, deduplicating unordered pairs so that A→B and B→A
// produce a single rendered edge.
//
// Identity:
//
//   - VertexID is a dense arena index (0..V-1) in declaration order.
//   - Key is the authoring identifier used by scene files.
//   - Name is the display name; AssignNames fills blank names with
//     "Vertex N" (1-based declaration index).
//
// Search code reads Neighbors directly; Edges exist only for rendering.
//
// Core Methods:
//
//	AddVertex(key, name, pos, opts...) (VertexID, error) // O(1)
//	Connect(from, to VertexID) error                      // O(1)
//	Neighbors(id) ([]VertexID, error)                     // O(deg)
//	AssignNames() int                                     // O(V)
//	SynthesizeEdges() []Edge                              // O(V+E)
//
// Quick ASCII example:
//
//	A───B
//	│   │
//	C───D
//
// authored as A:[B,C], B:[A,D], C:[D], D:[] still yields four edges.
package core
