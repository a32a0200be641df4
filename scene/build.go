package scene

import (
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/traversal"
)

// Scene is a built Definition: the graph plus its designations.
type Scene struct {
	Name  string
	Graph *core.Graph

	Start, Goal       core.VertexID
	HasStart, HasGoal bool

	LabelOffset    core.Position
	HasLabelOffset bool
}

// Build validates def and constructs its graph. Vertex IDs follow
// declaration order; adjacency is connected in authored order.
func Build(def *Definition) (*Scene, error) {
	if err := Validate(def); err != nil {
		return nil, err
	}

	g := core.NewGraph()
	for _, v := range def.Vertices {
		if _, err := g.AddVertex(v.Key, v.Name, toPosition(v.Position),
			core.WithPriority(v.Priority),
			core.WithAdjacency(len(v.Neighbors)),
		); err != nil {
			return nil, fmt.Errorf("%w: vertex %q: %v", ErrInvalidScene, v.Key, err)
		}
	}
	for i, v := range def.Vertices {
		from := core.VertexID(i)
		for _, n := range v.Neighbors {
			to, _ := g.Lookup(n)
			if err := g.Connect(from, to); err != nil {
				return nil, fmt.Errorf("%w: %q→%q: %v", ErrInvalidScene, v.Key, n, err)
			}
		}
	}

	sc := &Scene{
		Name:           def.Name,
		Graph:          g,
		Start:          core.NoVertex,
		Goal:           core.NoVertex,
		HasLabelOffset: len(def.LabelOffset) > 0,
		LabelOffset:    toPosition(def.LabelOffset),
	}
	if def.Start != "" {
		sc.Start, sc.HasStart = g.Lookup(def.Start)
	}
	if def.Goal != "" {
		sc.Goal, sc.HasGoal = g.Lookup(def.Goal)
	}

	return sc, nil
}

// Options returns the traversal options for the designated start and goal.
func (s *Scene) Options() []traversal.Option {
	var opts []traversal.Option
	if s.HasStart {
		opts = append(opts, traversal.WithStart(s.Start))
	}
	if s.HasGoal {
		opts = append(opts, traversal.WithGoal(s.Goal))
	}

	return opts
}

// Compatible reports whether def describes the same topology as g: the same
// keys in the same order, the same positions and the same adjacency.
func Compatible(g *core.Graph, def *Definition) bool {
	if g == nil || def == nil || g.Len() != len(def.Vertices) {
		return false
	}
	for i, v := range def.Vertices {
		id := core.VertexID(i)
		if got, ok := g.Lookup(v.Key); !ok || got != id {
			return false
		}
		if g.Position(id) != toPosition(v.Position) {
			return false
		}
		nbrs, err := g.Neighbors(id)
		if err != nil || len(nbrs) != len(v.Neighbors) {
			return false
		}
		for j, n := range v.Neighbors {
			if to, ok := g.Lookup(n); !ok || to != nbrs[j] {
				return false
			}
		}
	}

	return true
}

// Relabel applies authored names and priorities from def to g in place and
// returns the IDs whose name or priority changed. Blank names are skipped so
// ordinal names survive. Returns ErrTopologyChanged when def is not
// Compatible with g; g is left untouched in that case.
func Relabel(g *core.Graph, def *Definition) ([]core.VertexID, error) {
	if !Compatible(g, def) {
		return nil, ErrTopologyChanged
	}

	var changed []core.VertexID
	for i, v := range def.Vertices {
		id := core.VertexID(i)
		dirty := false
		if v.Name != "" && v.Name != g.Name(id) {
			_ = g.SetName(id, v.Name)
			dirty = true
		}
		if v.Priority != g.Priority(id) {
			_ = g.SetPriority(id, v.Priority)
			dirty = true
		}
		if dirty {
			changed = append(changed, id)
		}
	}

	return changed, nil
}

// toPosition maps 0..3 coordinates onto a Position; missing axes are zero.
func toPosition(xyz []float64) core.Position {
	var p core.Position
	if len(xyz) > 0 {
		p.X = xyz[0]
	}
	if len(xyz) > 1 {
		p.Y = xyz[1]
	}
	if len(xyz) > 2 {
		p.Z = xyz[2]
	}

	return p
}
