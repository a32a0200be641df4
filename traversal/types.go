// File: types.go
// Role: algorithms, lifecycle states, step results, options and sentinel
// errors for the step-driven walker.
package traversal

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/graphwalk/core"
)

// Sentinel errors for Stepper construction.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("traversal: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traversal: invalid option supplied")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm for unrecognized names.
	ErrUnknownAlgorithm = errors.New("traversal: unknown algorithm")
)

// Algorithm selects the frontier ordering rule.
type Algorithm int

const (
	// BFS pops in FIFO discovery order.
	BFS Algorithm = iota
	// PriorityBFS pops the frontier vertex with the highest declared priority.
	PriorityBFS
	// DFS pops in LIFO order.
	DFS
	// BestFirst greedily pops the frontier vertex nearest (Euclidean) to the
	// goal and halts on reaching it. It accumulates no path cost, so it is
	// not A*.
	BestFirst
)

// algorithmCount is the size of the switch cycle.
const algorithmCount = 4

// Next returns the algorithm that follows a in the switch cycle
// BFS → PriorityBFS → DFS → BestFirst → BFS.
func (a Algorithm) Next() Algorithm {
	return Algorithm((int(a) + 1) % algorithmCount)
}

// String returns the canonical name of a.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "bfs"
	case PriorityBFS:
		return "priority"
	case DFS:
		return "dfs"
	case BestFirst:
		return "best-first"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// Title returns a human-readable name for status lines.
func (a Algorithm) Title() string {
	switch a {
	case BFS:
		return "BFS"
	case PriorityBFS:
		return "Priority BFS"
	case DFS:
		return "DFS"
	case BestFirst:
		return "Best-first (goal)"
	default:
		return a.String()
	}
}

// ParseAlgorithm resolves a name (case-insensitive) to an Algorithm.
// Accepted aliases: "priority-bfs", "astar", "a*", "goal".
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs", "":
		return BFS, nil
	case "priority", "priority-bfs":
		return PriorityBFS, nil
	case "dfs":
		return DFS, nil
	case "best-first", "bestfirst", "astar", "a*", "goal":
		return BestFirst, nil
	default:
		return BFS, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// State is the traversal lifecycle state.
type State int

const (
	// Idle: no search in progress.
	Idle State = iota
	// Searching: Step performs one pop-visit-expand cycle.
	Searching
	// Finished: every reachable vertex was visited, or the goal was reached.
	Finished
)

// String returns the lowercase name of s.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Searching:
		return "searching"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Outcome classifies what a single Step did.
type Outcome int

const (
	// OutcomeNone: the stepper was not searching; nothing happened.
	OutcomeNone Outcome = iota
	// OutcomeVisited: a vertex was visited for the first time.
	OutcomeVisited
	// OutcomeAlreadySeen: the popped vertex had already been visited.
	OutcomeAlreadySeen
)

// String returns the lowercase name of o.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeVisited:
		return "visited"
	case OutcomeAlreadySeen:
		return "already_seen"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// StepResult reports the effect of one Step.
type StepResult struct {
	// Outcome classifies the step.
	Outcome Outcome

	// Vertex is the popped vertex, or core.NoVertex for OutcomeNone.
	Vertex core.VertexID

	// State is the stepper state after the step.
	State State

	// Continued is the vertex seeded to restart an exhausted frontier
	// (disconnected component), or core.NoVertex.
	Continued core.VertexID

	// Reached is true when the step visited the goal in BestFirst mode.
	Reached bool
}

// Option configures a Stepper via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the Stepper configuration.
type Options struct {
	// Algorithm is the initial mode. Default BFS.
	Algorithm Algorithm

	// Start is the designated start vertex, or core.NoVertex to start from
	// the first vertex in declaration order.
	Start core.VertexID

	// Goal is the designated goal vertex for BestFirst, or core.NoVertex.
	Goal core.VertexID

	// Observers receive lifecycle notifications in registration order.
	Observers []Observer

	// Logger receives lifecycle log lines. Default zap.NewNop().
	Logger *zap.Logger

	err error
}

// DefaultOptions returns Options with BFS, no start/goal designation,
// no observers and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Algorithm: BFS,
		Start:     core.NoVertex,
		Goal:      core.NoVertex,
		Logger:    zap.NewNop(),
	}
}

// WithAlgorithm sets the initial algorithm.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		if a < BFS || a > BestFirst {
			o.err = fmt.Errorf("%w: algorithm %d out of range", ErrOptionViolation, int(a))
			return
		}
		o.Algorithm = a
	}
}

// WithStart designates the start vertex.
func WithStart(id core.VertexID) Option {
	return func(o *Options) { o.Start = id }
}

// WithGoal designates the goal vertex used by BestFirst.
func WithGoal(id core.VertexID) Option {
	return func(o *Options) { o.Goal = id }
}

// WithObserver registers an observer. May be given more than once.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observers = append(o.Observers, obs)
		}
	}
}

// WithLogger sets the lifecycle logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
