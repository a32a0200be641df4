package traversal

import (
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/frontier"
)

// Stepper owns all mutable traversal state: the active frontier, the
// insertion-ordered visited set, and the lifecycle state.
//
// Stepper is NOT safe for concurrent use; drive it from one goroutine.
type Stepper struct {
	graph   *core.Graph
	opts    Options
	log     *zap.Logger
	alg     Algorithm
	state   State
	front   frontier.Frontier
	visited *orderedmap.OrderedMap[core.VertexID, struct{}]
	current core.VertexID
}

// New builds a Stepper over g in the Idle state.
// Returns ErrGraphNil for a nil graph and ErrOptionViolation for invalid
// options, including start or goal IDs that are not vertices of g.
func New(g *core.Graph, opts ...Option) (*Stepper, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Start != core.NoVertex && !g.HasVertex(o.Start) {
		return nil, fmt.Errorf("%w: start %d: %v", ErrOptionViolation, o.Start, core.ErrVertexNotFound)
	}
	if o.Goal != core.NoVertex && !g.HasVertex(o.Goal) {
		return nil, fmt.Errorf("%w: goal %d: %v", ErrOptionViolation, o.Goal, core.ErrVertexNotFound)
	}

	s := &Stepper{
		graph:   g,
		opts:    o,
		log:     o.Logger,
		alg:     o.Algorithm,
		state:   Idle,
		visited: orderedmap.New[core.VertexID, struct{}](),
		current: core.NoVertex,
	}
	s.front = s.newFrontier(s.alg)

	return s, nil
}

// Initialize assigns ordinal names to unnamed vertices, synthesizes the
// deduplicated edge list, notifies observers and starts a search.
// Returns the synthesized edges.
func (s *Stepper) Initialize() []core.Edge {
	assigned := s.graph.AssignNames()
	edges := s.graph.SynthesizeEdges()
	s.log.Info("vertices initialized",
		zap.Int("vertices", s.graph.Len()),
		zap.Int("ordinal_names", assigned),
		zap.Int("edges", len(edges)),
	)
	for _, obs := range s.opts.Observers {
		obs.OnInitialize(s.graph, edges)
	}
	s.Start()

	return edges
}

// Start clears any previous search and seeds the frontier with the start
// vertex, moving Idle → Searching. It returns false, leaving the stepper
// Idle, when no start vertex exists: an empty graph, or BestFirst without
// both a start and a goal.
func (s *Stepper) Start() bool {
	s.clear()
	start, ok := s.startVertex()
	if !ok {
		s.log.Debug("search not started", zap.Stringer("algorithm", s.alg))
		s.notifyFrontier()
		return false
	}

	s.front.Push(start)
	s.state = Searching
	s.log.Info("search started",
		zap.Stringer("algorithm", s.alg),
		zap.String("start", s.graph.Name(start)),
	)
	for _, obs := range s.opts.Observers {
		obs.OnStart(s.alg, start)
	}
	s.notifyFrontier()

	return true
}

// Step performs one pop-visit-expand cycle. Outside the Searching state it
// does nothing and reports OutcomeNone.
//
//  1. Pop per the algorithm's ordering rule.
//  2. Already visited: report OutcomeAlreadySeen and end the step.
//  3. Otherwise mark visited and, unless this is the BestFirst goal, push
//     every neighbor that is neither visited nor already queued.
//  4. If the frontier is now empty, reseed it with the next unvisited vertex
//     (not in BestFirst) or finish.
func (s *Stepper) Step() StepResult {
	res := StepResult{Outcome: OutcomeNone, Vertex: core.NoVertex, State: s.state, Continued: core.NoVertex}
	if s.state != Searching {
		return res
	}

	id, ok := s.front.Pop()
	if !ok {
		s.advance(&res)
		s.notifyFrontier()
		res.State = s.state
		return res
	}
	res.Vertex = id

	if s.isVisited(id) {
		res.Outcome = OutcomeAlreadySeen
		s.log.Debug("already visited", zap.String("vertex", s.graph.Name(id)))
		for _, obs := range s.opts.Observers {
			obs.OnAlreadySeen(id)
		}
	} else {
		res.Outcome = OutcomeVisited
		s.visit(id)
		if s.alg == BestFirst && id == s.opts.Goal {
			res.Reached = true
			s.finish()
		} else {
			s.expand(id)
		}
	}

	if s.state == Searching && s.front.Len() == 0 {
		s.advance(&res)
	}
	s.notifyFrontier()
	res.State = s.state

	return res
}

// Reset returns any state to Idle, clearing the frontier and visited set.
// Observers restore every vertex to neutral.
func (s *Stepper) Reset() {
	s.clear()
	s.log.Info("graph reset")
	for _, obs := range s.opts.Observers {
		obs.OnReset()
	}
	s.notifyFrontier()
}

// SwitchAlgorithm cycles to the next algorithm and returns it.
//
// While Searching, the open set moves into the new frontier in its current
// pop order and visited progress is kept; switching into BestFirst without
// a start/goal pair drops the search back to Idle. In any other state only
// the mode changes.
func (s *Stepper) SwitchAlgorithm() Algorithm {
	from, to := s.alg, s.alg.Next()
	next := s.newFrontier(to)
	if s.state == Searching {
		frontier.Drain(s.front, next)
	}
	s.alg = to
	s.front = next

	if s.state == Searching && to == BestFirst && !s.hasGoalPair() {
		s.front.Clear()
		s.state = Idle
		s.log.Info("search stopped: goal-directed mode needs a start and a goal")
	}
	s.log.Info("algorithm switched", zap.Stringer("from", from), zap.Stringer("to", to))
	for _, obs := range s.opts.Observers {
		obs.OnSwitch(from, to)
	}
	s.notifyFrontier()

	return to
}

// Reprioritize re-scores the open set after vertex priorities or names
// changed in place. The frontier is rebuilt for the active algorithm and
// observers receive the new pop order. Visited progress is kept.
func (s *Stepper) Reprioritize() {
	next := s.newFrontier(s.alg)
	frontier.Drain(s.front, next)
	s.front = next
	s.log.Debug("frontier rescored",
		zap.Stringer("algorithm", s.alg),
		zap.Int("size", s.front.Len()),
	)
	s.notifyFrontier()
}

// State returns the lifecycle state.
func (s *Stepper) State() State { return s.state }

// Algorithm returns the active algorithm.
func (s *Stepper) Algorithm() Algorithm { return s.alg }

// Graph returns the graph being walked.
func (s *Stepper) Graph() *core.Graph { return s.graph }

// Edges returns the synthesized edges of the graph.
func (s *Stepper) Edges() []core.Edge { return s.graph.Edges() }

// Current returns the most recently visited vertex, or core.NoVertex.
func (s *Stepper) Current() core.VertexID { return s.current }

// Visited returns the visited vertices in visit order.
func (s *Stepper) Visited() []core.VertexID {
	out := make([]core.VertexID, 0, s.visited.Len())
	for pair := s.visited.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}

	return out
}

// IsVisited reports whether id was visited in the current search.
func (s *Stepper) IsVisited(id core.VertexID) bool { return s.isVisited(id) }

// Frontier returns the frontier contents in pop order.
func (s *Stepper) Frontier() []core.VertexID { return s.front.Items() }

// FrontierLabel returns "Queue" or "Stack" for the active algorithm family.
func (s *Stepper) FrontierLabel() string { return s.front.Kind().Label() }

// Status renders the frontier as "<Label>: <name>, <name>".
func (s *Stepper) Status() string {
	return FormatStatus(s.front.Kind(), s.graph.Names(s.front.Items()))
}

// FormatStatus renders a frontier status line from display names.
// An empty frontier renders as the bare label, e.g. "Queue:".
func FormatStatus(kind frontier.Kind, names []string) string {
	if len(names) == 0 {
		return kind.Label() + ":"
	}

	return kind.Label() + ": " + strings.Join(names, ", ")
}

// visit marks id visited and notifies observers.
func (s *Stepper) visit(id core.VertexID) {
	prev := s.current
	s.visited.Set(id, struct{}{})
	s.current = id
	s.log.Info("visiting",
		zap.String("vertex", s.graph.Name(id)),
		zap.Int("order", s.visited.Len()),
	)
	for _, obs := range s.opts.Observers {
		obs.OnVisit(s.alg, id, prev)
	}
}

// isVisited reports membership in the visited set.
func (s *Stepper) isVisited(id core.VertexID) bool {
	_, ok := s.visited.Get(id)
	return ok
}

// expand pushes the unvisited, not-yet-queued neighbors of id in
// adjacency order.
func (s *Stepper) expand(id core.VertexID) {
	nbrs, err := s.graph.Neighbors(id)
	if err != nil {
		// id came off our own frontier, so this only happens if the graph
		// shrank underneath the stepper; treat as no neighbors.
		s.log.Warn("neighbors unavailable", zap.Int("vertex", int(id)), zap.Error(err))
		return
	}
	for _, nbr := range nbrs {
		if s.isVisited(nbr) || s.front.Contains(nbr) {
			continue
		}
		s.front.Push(nbr)
	}
}

// advance handles an exhausted frontier: reseed from the next unvisited
// vertex in declaration order, or finish. BestFirst always finishes.
func (s *Stepper) advance(res *StepResult) {
	if s.alg != BestFirst {
		for _, id := range s.graph.Vertices() {
			if s.isVisited(id) {
				continue
			}
			s.front.Push(id)
			res.Continued = id
			s.log.Info("found unvisited vertex, continuing search",
				zap.String("vertex", s.graph.Name(id)),
			)
			for _, obs := range s.opts.Observers {
				obs.OnContinue(id)
			}
			return
		}
	}
	s.finish()
}

// finish moves to Finished and notifies observers.
func (s *Stepper) finish() {
	s.state = Finished
	visited := s.Visited()
	s.log.Info("search finished",
		zap.Stringer("algorithm", s.alg),
		zap.Int("visited", len(visited)),
	)
	for _, obs := range s.opts.Observers {
		obs.OnFinish(s.alg, visited)
	}
}

// clear drops all search state and returns to Idle without notifying.
func (s *Stepper) clear() {
	s.front.Clear()
	s.visited = orderedmap.New[core.VertexID, struct{}]()
	s.current = core.NoVertex
	s.state = Idle
}

// startVertex picks the vertex a new search begins from.
func (s *Stepper) startVertex() (core.VertexID, bool) {
	if s.alg == BestFirst {
		return s.opts.Start, s.hasGoalPair()
	}
	if s.opts.Start != core.NoVertex {
		return s.opts.Start, true
	}
	if s.graph.Len() == 0 {
		return core.NoVertex, false
	}

	return core.VertexID(0), true
}

// hasGoalPair reports whether both a start and a goal are designated.
func (s *Stepper) hasGoalPair() bool {
	return s.opts.Start != core.NoVertex && s.opts.Goal != core.NoVertex
}

// newFrontier builds the container for alg.
func (s *Stepper) newFrontier(alg Algorithm) frontier.Frontier {
	switch alg {
	case DFS:
		return frontier.NewStack()
	case PriorityBFS:
		return frontier.NewMaxPriority(s.graph.Priority)
	case BestFirst:
		goal := s.opts.Goal
		return frontier.NewNearest(func(id core.VertexID) float64 {
			if goal == core.NoVertex {
				return 0
			}
			return s.graph.Position(id).Distance(s.graph.Position(goal))
		})
	default:
		return frontier.NewQueue()
	}
}

// notifyFrontier publishes the current frontier to observers.
func (s *Stepper) notifyFrontier() {
	if len(s.opts.Observers) == 0 {
		return
	}
	kind, items := s.front.Kind(), s.front.Items()
	for _, obs := range s.opts.Observers {
		obs.OnFrontier(kind, items)
	}
}
