package frontier

import (
	"container/heap"
	"sort"

	"github.com/katalvlaran/graphwalk/core"
)

// Ordered is a heap-ordered frontier. Each entry is scored once, when it is
// pushed; ties are broken by insertion sequence (earlier first), which keeps
// the pop order consistent across runs.
//
// Complexity: Push and Pop O(log n), Contains O(1), Items O(n log n).
type Ordered struct {
	h   entryHeap
	set members
	seq uint64
	key func(core.VertexID) float64
}

// NewMaxPriority returns a frontier that pops the highest score first.
func NewMaxPriority(score func(core.VertexID) int) *Ordered {
	return newOrdered(func(id core.VertexID) float64 { return float64(score(id)) }, true)
}

// NewNearest returns a frontier that pops the smallest distance first.
func NewNearest(dist func(core.VertexID) float64) *Ordered {
	return newOrdered(dist, false)
}

func newOrdered(key func(core.VertexID) float64, max bool) *Ordered {
	return &Ordered{
		h:   entryHeap{max: max},
		set: make(members),
		key: key,
	}
}

// Push scores id and inserts it.
func (o *Ordered) Push(id core.VertexID) {
	heap.Push(&o.h, entry{id: id, key: o.key(id), seq: o.seq})
	o.seq++
	o.set.add(id)
}

// Pop removes the best-scored entry.
func (o *Ordered) Pop() (core.VertexID, bool) {
	if o.h.Len() == 0 {
		return core.NoVertex, false
	}
	e := heap.Pop(&o.h).(entry)
	o.set.remove(e.id)

	return e.id, true
}

// Contains reports membership in O(1).
func (o *Ordered) Contains(id core.VertexID) bool { return o.set.has(id) }

// Len returns the number of entries.
func (o *Ordered) Len() int { return o.h.Len() }

// Items returns the entries in pop order without disturbing the heap.
func (o *Ordered) Items() []core.VertexID {
	sorted := make([]entry, len(o.h.items))
	copy(sorted, o.h.items)
	sort.Slice(sorted, func(i, j int) bool { return o.h.before(sorted[i], sorted[j]) })

	out := make([]core.VertexID, len(sorted))
	for i, e := range sorted {
		out[i] = e.id
	}

	return out
}

// Clear empties the frontier. The insertion sequence keeps counting so
// tie-breaks stay consistent for a frontier that is refilled.
func (o *Ordered) Clear() {
	o.h.items = nil
	o.set = make(members)
}

// Kind returns KindQueue.
func (o *Ordered) Kind() Kind { return KindQueue }

// entry is a scored heap element.
type entry struct {
	id  core.VertexID
	key float64
	seq uint64
}

// entryHeap implements heap.Interface over entries; max selects the
// direction of the key comparison.
type entryHeap struct {
	items []entry
	max   bool
}

// before reports whether a pops before b.
func (h entryHeap) before(a, b entry) bool {
	if a.key != b.key {
		if h.max {
			return a.key > b.key
		}
		return a.key < b.key
	}

	return a.seq < b.seq
}

func (h entryHeap) Len() int           { return len(h.items) }
func (h entryHeap) Less(i, j int) bool { return h.before(h.items[i], h.items[j]) }
func (h entryHeap) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *entryHeap) Push(x interface{}) { h.items = append(h.items, x.(entry)) }

func (h *entryHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]

	return item
}
