package render

import (
	"sync"

	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/frontier"
	"github.com/katalvlaran/graphwalk/traversal"
)

// DefaultLabelOffset places labels one unit right of their vertex.
var DefaultLabelOffset = core.Position{X: 1}

// VertexView is the side-table entry of one vertex.
type VertexView struct {
	ID       core.VertexID
	Color    Color
	Label    string
	Position core.Position
	LabelPos core.Position
	Recolors int
}

// EdgeLine is the side-table entry of one synthesized edge.
type EdgeLine struct {
	Edge     core.Edge
	From, To core.Position
	Color    Color
}

// Board is the presentation side-table of a traversal. It implements
// traversal.Observer; register it with traversal.WithObserver.
//
// Methods on a nil *Board are no-ops, and notifications for vertex IDs the
// Board does not know are ignored.
type Board struct {
	traversal.NopObserver

	mu      sync.RWMutex
	offset  core.Position
	order   []core.VertexID
	verts   map[core.VertexID]*VertexView
	edges   []EdgeLine
	visited map[core.VertexID]bool
	current core.VertexID
	alg     traversal.Algorithm
	kind    frontier.Kind
	open    []core.VertexID
	status  string
}

var _ traversal.Observer = (*Board)(nil)

// NewBoard returns an empty Board whose labels sit at vertex position plus
// offset.
func NewBoard(offset core.Position) *Board {
	return &Board{
		offset:  offset,
		verts:   make(map[core.VertexID]*VertexView),
		visited: make(map[core.VertexID]bool),
		current: core.NoVertex,
	}
}

// OnInitialize builds the side-table from the graph and its edges.
func (b *Board) OnInitialize(g *core.Graph, edges []core.Edge) {
	if b == nil || g == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.order = g.Vertices()
	b.verts = make(map[core.VertexID]*VertexView, len(b.order))
	for _, id := range b.order {
		pos := g.Position(id)
		b.verts[id] = &VertexView{
			ID:       id,
			Color:    Neutral,
			Label:    g.Name(id),
			Position: pos,
			LabelPos: pos.Add(b.offset),
		}
	}
	b.edges = make([]EdgeLine, 0, len(edges))
	for _, e := range edges {
		b.edges = append(b.edges, EdgeLine{
			Edge: e,
			From: g.Position(e.A),
			To:   g.Position(e.B),
		})
	}
	b.visited = make(map[core.VertexID]bool)
	b.current = core.NoVertex
}

// OnStart restores every vertex and edge to Neutral for the new search.
func (b *Board) OnStart(alg traversal.Algorithm, _ core.VertexID) {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.alg = alg
	b.neutralize()
}

// OnVisit colors id Visiting and the previous vertex Visited.
func (b *Board) OnVisit(alg traversal.Algorithm, id, prev core.VertexID) {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.alg = alg
	if prev != core.NoVertex {
		b.recolor(prev, Visited)
	}
	b.visited[id] = true
	b.current = id
	b.recolor(id, Visiting)
	b.colorEdges()
}

// OnAlreadySeen colors id AlreadySeen.
func (b *Board) OnAlreadySeen(id core.VertexID) {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.recolor(id, AlreadySeen)
}

// OnFrontier refreshes the status text.
func (b *Board) OnFrontier(kind frontier.Kind, items []core.VertexID) {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.kind = kind
	b.open = append(b.open[:0], items...)
	b.formatStatus()
}

// OnFinish settles the last visited vertex to Visited.
func (b *Board) OnFinish(alg traversal.Algorithm, _ []core.VertexID) {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.alg = alg
	if b.current != core.NoVertex {
		b.recolor(b.current, Visited)
	}
}

// OnReset restores every vertex and edge to Neutral.
func (b *Board) OnReset() {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.neutralize()
}

// OnSwitch records the new algorithm.
func (b *Board) OnSwitch(_, to traversal.Algorithm) {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.alg = to
}

// Relabel replaces the label of id. Unknown IDs are ignored.
func (b *Board) Relabel(id core.VertexID, name string) {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if v, ok := b.verts[id]; ok {
		v.Label = name
		b.formatStatus()
	}
}

// Color returns the color of id; ok is false for unknown IDs.
func (b *Board) Color(id core.VertexID) (c Color, ok bool) {
	if b == nil {
		return Neutral, false
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	v, ok := b.verts[id]
	if !ok {
		return Neutral, false
	}

	return v.Color, true
}

// Label returns the label text of id; ok is false for unknown IDs.
func (b *Board) Label(id core.VertexID) (string, bool) {
	if b == nil {
		return "", false
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	v, ok := b.verts[id]
	if !ok {
		return "", false
	}

	return v.Label, true
}

// Recolors returns how many times the color of id changed since the Board
// was initialized.
func (b *Board) Recolors(id core.VertexID) int {
	if b == nil {
		return 0
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	if v, ok := b.verts[id]; ok {
		return v.Recolors
	}

	return 0
}

// Vertices returns copies of the vertex entries in declaration order.
func (b *Board) Vertices() []VertexView {
	if b == nil {
		return nil
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]VertexView, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, *b.verts[id])
	}

	return out
}

// Edges returns copies of the edge lines in synthesis order.
func (b *Board) Edges() []EdgeLine {
	if b == nil {
		return nil
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]EdgeLine, len(b.edges))
	copy(out, b.edges)

	return out
}

// StatusLine returns the latest frontier status text.
func (b *Board) StatusLine() string {
	if b == nil {
		return ""
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.status
}

// Algorithm returns the algorithm named by the latest notification.
func (b *Board) Algorithm() traversal.Algorithm {
	if b == nil {
		return traversal.BFS
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.alg
}

// recolor sets the color of id, counting actual changes. Caller holds mu.
func (b *Board) recolor(id core.VertexID, c Color) {
	v, ok := b.verts[id]
	if !ok || v.Color == c {
		return
	}
	v.Color = c
	v.Recolors++
}

// formatStatus rebuilds the status text from the last frontier contents
// and the current labels.
func (b *Board) formatStatus() {
	names := make([]string, 0, len(b.open))
	for _, id := range b.open {
		if v, ok := b.verts[id]; ok {
			names = append(names, v.Label)
		}
	}
	b.status = traversal.FormatStatus(b.kind, names)
}

// colorEdges turns an edge Visited once both endpoints are visited.
func (b *Board) colorEdges() {
	for i := range b.edges {
		e := &b.edges[i]
		if e.Color == Neutral && b.visited[e.Edge.A] && b.visited[e.Edge.B] {
			e.Color = Visited
		}
	}
}

// neutralize restores Neutral everywhere and forgets the search.
func (b *Board) neutralize() {
	for _, id := range b.order {
		b.recolor(id, Neutral)
	}
	for i := range b.edges {
		b.edges[i].Color = Neutral
	}
	b.visited = make(map[core.VertexID]bool)
	b.current = core.NoVertex
}
