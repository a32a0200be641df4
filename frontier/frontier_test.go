package frontier_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/frontier"
)

// popAll drains f and returns the pop sequence.
func popAll(f frontier.Frontier) []core.VertexID {
	var out []core.VertexID
	for {
		id, ok := f.Pop()
		if !ok {
			return out
		}
		out = append(out, id)
	}
}

func TestQueue_FIFO(t *testing.T) {
	q := frontier.NewQueue()
	for _, id := range []core.VertexID{3, 1, 2} {
		q.Push(id)
	}
	assert.Equal(t, []core.VertexID{3, 1, 2}, q.Items())
	assert.True(t, q.Contains(1))
	assert.Equal(t, 3, q.Len())

	if diff := cmp.Diff([]core.VertexID{3, 1, 2}, popAll(q)); diff != "" {
		t.Errorf("pop order mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, q.Contains(1))
	_, ok := q.Pop()
	assert.False(t, ok)
}

func TestStack_LIFO(t *testing.T) {
	s := frontier.NewStack()
	for _, id := range []core.VertexID{3, 1, 2} {
		s.Push(id)
	}
	assert.Equal(t, []core.VertexID{2, 1, 3}, s.Items(), "Items lists top first")
	if diff := cmp.Diff([]core.VertexID{2, 1, 3}, popAll(s)); diff != "" {
		t.Errorf("pop order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, frontier.KindStack, s.Kind())
	assert.Equal(t, "Stack", s.Kind().Label())
}

func TestMaxPriority_TiesByInsertion(t *testing.T) {
	prio := map[core.VertexID]int{0: 1, 1: 5, 2: 5, 3: 9, 4: 1}
	f := frontier.NewMaxPriority(func(id core.VertexID) int { return prio[id] })
	for _, id := range []core.VertexID{0, 1, 2, 3, 4} {
		f.Push(id)
	}

	want := []core.VertexID{3, 1, 2, 0, 4}
	assert.Equal(t, want, f.Items())
	assert.Equal(t, want, popAll(f))
	assert.Equal(t, "Queue", f.Kind().Label())
}

func TestNearest_SmallestDistanceFirst(t *testing.T) {
	dist := map[core.VertexID]float64{0: 4.5, 1: 1.0, 2: 2.0, 3: 1.0}
	f := frontier.NewNearest(func(id core.VertexID) float64 { return dist[id] })
	for _, id := range []core.VertexID{0, 1, 2, 3} {
		f.Push(id)
	}

	id, ok := f.Pop()
	require.True(t, ok)
	assert.Equal(t, core.VertexID(1), id)
	assert.False(t, f.Contains(1))
	assert.True(t, f.Contains(3))
	assert.Equal(t, []core.VertexID{3, 2, 0}, popAll(f))
}

func TestClear(t *testing.T) {
	for name, f := range map[string]frontier.Frontier{
		"queue":    frontier.NewQueue(),
		"stack":    frontier.NewStack(),
		"priority": frontier.NewMaxPriority(func(core.VertexID) int { return 0 }),
	} {
		t.Run(name, func(t *testing.T) {
			f.Push(1)
			f.Push(2)
			f.Clear()
			assert.Zero(t, f.Len())
			assert.False(t, f.Contains(1))
			assert.Empty(t, f.Items())
		})
	}
}

func TestDrain_PreservesPopOrder(t *testing.T) {
	s := frontier.NewStack()
	s.Push(1)
	s.Push(2)
	s.Push(3)
	q := frontier.NewQueue()

	frontier.Drain(s, q)

	assert.Zero(t, s.Len())
	assert.Equal(t, []core.VertexID{3, 2, 1}, q.Items())
}
