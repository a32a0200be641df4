package frontier

import "github.com/katalvlaran/graphwalk/core"

// compactMin is the number of popped slots a Queue tolerates before it
// shifts live entries to the front of its backing array.
const compactMin = 64

// Queue is a FIFO frontier.
type Queue struct {
	items []core.VertexID
	head  int // index of the front entry in items
	set   members
}

// NewQueue returns an empty FIFO frontier.
func NewQueue() *Queue {
	return &Queue{set: make(members)}
}

// Push appends id at the back.
func (q *Queue) Push(id core.VertexID) {
	q.items = append(q.items, id)
	q.set.add(id)
}

// Pop removes the front entry. Popped slots are reclaimed once the queue
// drains, or once they outnumber the live entries.
func (q *Queue) Pop() (core.VertexID, bool) {
	if q.head == len(q.items) {
		return core.NoVertex, false
	}
	id := q.items[q.head]
	q.head++
	q.set.remove(id)

	switch {
	case q.head == len(q.items):
		q.items, q.head = q.items[:0], 0
	case q.head >= compactMin && 2*q.head >= len(q.items):
		n := copy(q.items, q.items[q.head:])
		q.items, q.head = q.items[:n], 0
	}

	return id, true
}

// Contains reports queue membership in O(1).
func (q *Queue) Contains(id core.VertexID) bool { return q.set.has(id) }

// Len returns the number of entries.
func (q *Queue) Len() int { return len(q.items) - q.head }

// Items returns entries front to back.
func (q *Queue) Items() []core.VertexID {
	out := make([]core.VertexID, q.Len())
	copy(out, q.items[q.head:])

	return out
}

// Clear empties the queue.
func (q *Queue) Clear() {
	q.items, q.head = nil, 0
	q.set = make(members)
}

// Kind returns KindQueue.
func (q *Queue) Kind() Kind { return KindQueue }

// Stack is a LIFO frontier.
type Stack struct {
	items []core.VertexID
	set   members
}

// NewStack returns an empty LIFO frontier.
func NewStack() *Stack {
	return &Stack{set: make(members)}
}

// Push places id on top.
func (s *Stack) Push(id core.VertexID) {
	s.items = append(s.items, id)
	s.set.add(id)
}

// Pop removes the top entry.
func (s *Stack) Pop() (core.VertexID, bool) {
	n := len(s.items)
	if n == 0 {
		return core.NoVertex, false
	}
	id := s.items[n-1]
	s.items = s.items[:n-1]
	s.set.remove(id)

	return id, true
}

// Contains reports stack membership in O(1).
func (s *Stack) Contains(id core.VertexID) bool { return s.set.has(id) }

// Len returns the number of entries.
func (s *Stack) Len() int { return len(s.items) }

// Items returns entries top to bottom.
func (s *Stack) Items() []core.VertexID {
	n := len(s.items)
	out := make([]core.VertexID, n)
	for i := range s.items {
		out[i] = s.items[n-1-i]
	}

	return out
}

// Clear empties the stack.
func (s *Stack) Clear() {
	s.items = nil
	s.set = make(members)
}

// Kind returns KindStack.
func (s *Stack) Kind() Kind { return KindStack }
