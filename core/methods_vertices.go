// File: methods_vertices.go
// Role: Vertex lifecycle, naming and queries.
//
// Determinism:
//   - Vertices() returns IDs in declaration order.
//   - AssignNames() numbers unnamed vertices by declaration index.
package core

import (
	"fmt"
	"strconv"
	"strings"
)

// ordinalNameFormat is the fallback display name for unnamed vertices.
const ordinalNameFormat = "Vertex %d"

// AddVertex appends a vertex to the arena and returns its ID.
//
// Implementation:
//   - Stage 1: Resolve the key; an empty key defaults to the decimal arena index.
//   - Stage 2: Reject keys already in use (ErrDuplicateKey).
//   - Stage 3: Apply options and register the vertex.
//
// The name may be empty; AssignNames fills it in during initialization.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(key, name string, pos Position, opts ...VertexOption) (VertexID, error) {
	id := VertexID(len(g.vertices))
	if key == "" {
		key = strconv.Itoa(int(id))
	}
	if _, exists := g.keys[key]; exists {
		return NoVertex, fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}

	v := &Vertex{ID: id, Key: key, Name: name, Position: pos}
	for _, opt := range opts {
		opt(v)
	}
	g.vertices = append(g.vertices, v)
	g.keys[key] = id

	return id, nil
}

// Vertex returns the vertex stored under id.
// Complexity: O(1).
func (g *Graph) Vertex(id VertexID) (*Vertex, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("%w: id=%d", ErrVertexNotFound, id)
	}

	return g.vertices[id], nil
}

// HasVertex reports whether id addresses a vertex of g.
func (g *Graph) HasVertex(id VertexID) bool {
	return id >= 0 && int(id) < len(g.vertices)
}

// Lookup resolves an authoring key to a VertexID.
func (g *Graph) Lookup(key string) (VertexID, bool) {
	id, ok := g.keys[key]

	return id, ok
}

// Len returns the number of vertices.
func (g *Graph) Len() int { return len(g.vertices) }

// Vertices returns all vertex IDs in declaration order.
// Complexity: O(V).
func (g *Graph) Vertices() []VertexID {
	out := make([]VertexID, len(g.vertices))
	for i := range g.vertices {
		out[i] = VertexID(i)
	}

	return out
}

// Name returns the display name of id, or "" if id is unknown.
func (g *Graph) Name(id VertexID) string {
	if !g.HasVertex(id) {
		return ""
	}

	return g.vertices[id].Name
}

// Names maps ids to their display names, preserving order.
func (g *Graph) Names(ids []VertexID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = g.Name(id)
	}

	return out
}

// SetName overwrites the display name of id.
func (g *Graph) SetName(id VertexID, name string) error {
	v, err := g.Vertex(id)
	if err != nil {
		return err
	}
	v.Name = name

	return nil
}

// SetPriority overwrites the traversal priority of id.
func (g *Graph) SetPriority(id VertexID, p int) error {
	v, err := g.Vertex(id)
	if err != nil {
		return err
	}
	v.Priority = p

	return nil
}

// Priority returns the traversal priority of id, or 0 if id is unknown.
func (g *Graph) Priority(id VertexID) int {
	if !g.HasVertex(id) {
		return 0
	}

	return g.vertices[id].Priority
}

// Position returns the scene position of id, or the origin if id is unknown.
func (g *Graph) Position(id VertexID) Position {
	if !g.HasVertex(id) {
		return Position{}
	}

	return g.vertices[id].Position
}

// AssignNames gives every vertex with a blank name the ordinal name
// "Vertex N", where N is its 1-based declaration index. Authored names are
// kept. Returns the number of names assigned.
//
// Complexity: O(V).
func (g *Graph) AssignNames() int {
	assigned := 0
	for i, v := range g.vertices {
		if strings.TrimSpace(v.Name) != "" {
			continue
		}
		v.Name = fmt.Sprintf(ordinalNameFormat, i+1)
		assigned++
	}

	return assigned
}
