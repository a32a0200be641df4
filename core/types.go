// Package core defines the scene graph: an ordered arena of positioned
// vertices, their authored adjacency lists, and the edges derived from them.
//
// This file declares VertexID, Position, Vertex, Edge, Graph, VertexOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrDuplicateKey   - authoring key already used by another vertex.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDuplicateKey indicates a vertex key collides with an existing vertex.
	ErrDuplicateKey = errors.New("core: duplicate vertex key")
)

// VertexID is the index of a vertex inside its Graph's arena.
// IDs are dense, assigned in declaration order starting from zero.
type VertexID int

// NoVertex is the sentinel "absent" VertexID.
const NoVertex VertexID = -1

// Position is a point in scene space.
type Position struct {
	X, Y, Z float64
}

// Distance returns the Euclidean distance between p and q.
// Complexity: O(1).
func (p Position) Distance(q Position) float64 {
	dx, dy, dz := p.X-q.X, p.Y-q.Y, p.Z-q.Z

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Add returns p translated by q.
func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Vertex is an authored scene object.
//
// Key identifies the vertex in authoring files; Name is what gets displayed
// and may stay empty until Graph.AssignNames runs. Adjacency holds the
// authored neighbor list in its declared order and may be nil.
type Vertex struct {
	// ID is the arena index of this vertex.
	ID VertexID

	// Key is the authoring identifier, unique within the Graph.
	Key string

	// Name is the display name.
	Name string

	// Priority orders the vertex in priority traversal (higher first).
	Priority int

	// Position places the vertex in scene space.
	Position Position

	// Adjacency lists neighbors in authored order. Not necessarily symmetric.
	Adjacency []VertexID
}

// Edge is a rendered connection between two vertices, synthesized from
// adjacency lists. The pair {A, B} is unordered; A is the endpoint that
// declared the connection first.
type Edge struct {
	// ID is the synthesis index of the edge.
	ID int

	// Name is "Edge <A>-<B>" using display names at synthesis time.
	Name string

	// A and B are the endpoints.
	A, B VertexID
}

// Other returns the endpoint of e opposite to id, and false if id is not an endpoint.
func (e Edge) Other(id VertexID) (VertexID, bool) {
	switch id {
	case e.A:
		return e.B, true
	case e.B:
		return e.A, true
	default:
		return NoVertex, false
	}
}

// VertexOption configures a vertex when it is added.
type VertexOption func(*Vertex)

// WithPriority sets the traversal priority of a vertex.
func WithPriority(p int) VertexOption {
	return func(v *Vertex) { v.Priority = p }
}

// WithAdjacency preallocates the adjacency list with the given capacity hint.
func WithAdjacency(capacity int) VertexOption {
	return func(v *Vertex) {
		if capacity > 0 {
			v.Adjacency = make([]VertexID, 0, capacity)
		}
	}
}

// Graph is the scene graph: an ordered vertex arena plus derived edges.
//
// Graph is NOT safe for concurrent use. It is owned by a single driver loop
// which performs authoring, initialization and traversal on one goroutine.
type Graph struct {
	vertices []*Vertex
	keys     map[string]VertexID
	edges    []Edge
	pairs    map[pairKey]int // unordered pair -> index into edges
}

// pairKey is the normalized (low, high) endpoint pair of an edge.
type pairKey struct{ lo, hi VertexID }

func newPairKey(a, b VertexID) pairKey {
	if a > b {
		a, b = b, a
	}

	return pairKey{lo: a, hi: b}
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices: make([]*Vertex, 0),
		keys:     make(map[string]VertexID),
		pairs:    make(map[pairKey]int),
	}
}
