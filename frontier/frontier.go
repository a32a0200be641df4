// Package frontier provides the open-set containers used by traversal:
// a FIFO queue, a LIFO stack, and two heap-ordered queues (maximum priority
// and nearest-to-goal).
//
// Every container tracks membership in a set, so Contains is O(1) and the
// walker can test membership before insertion without scanning.
package frontier

import "github.com/katalvlaran/graphwalk/core"

// Kind is the display family of a frontier.
type Kind int

const (
	// KindQueue covers FIFO and heap-ordered queues.
	KindQueue Kind = iota
	// KindStack covers LIFO stacks.
	KindStack
)

// Label returns the status-text label of k: "Queue" or "Stack".
func (k Kind) Label() string {
	if k == KindStack {
		return "Stack"
	}

	return "Queue"
}

// Frontier is the open set of discovered-but-unvisited vertices.
type Frontier interface {
	// Push adds id. Callers check Contains first; pushing a member again
	// stores a duplicate entry.
	Push(id core.VertexID)

	// Pop removes and returns the next vertex under the container's rule.
	// ok is false when the frontier is empty.
	Pop() (id core.VertexID, ok bool)

	// Contains reports whether id is currently queued.
	Contains(id core.VertexID) bool

	// Len returns the number of queued entries.
	Len() int

	// Items returns the entries in the order Pop would yield them.
	Items() []core.VertexID

	// Clear empties the frontier.
	Clear()

	// Kind returns the display family.
	Kind() Kind
}

// Drain moves every entry of from into into, in from's pop order.
// from is empty afterwards.
// Complexity: O(n) pushes into into plus O(n log n) for heap sources.
func Drain(from, into Frontier) {
	for _, id := range from.Items() {
		into.Push(id)
	}
	from.Clear()
}

// members is a multiset of queued vertex IDs.
type members map[core.VertexID]int

func (m members) add(id core.VertexID) { m[id]++ }

func (m members) remove(id core.VertexID) {
	if m[id] <= 1 {
		delete(m, id)
		return
	}
	m[id]--
}

func (m members) has(id core.VertexID) bool { return m[id] > 0 }
