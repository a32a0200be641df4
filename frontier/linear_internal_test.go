package frontier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphwalk/core"
)

func TestQueue_CompactsPoppedSlots(t *testing.T) {
	q := NewQueue()
	for i := 0; i < 200; i++ {
		q.Push(core.VertexID(i))
	}
	for i := 0; i < 150; i++ {
		id, ok := q.Pop()
		require.True(t, ok)
		require.Equal(t, core.VertexID(i), id)
	}
	assert.Equal(t, 50, q.Len())
	assert.LessOrEqual(t, len(q.items), 100, "popped prefix was not reclaimed")
	assert.Equal(t, core.VertexID(150), q.Items()[0])

	for q.Len() > 0 {
		q.Pop()
	}
	assert.Zero(t, len(q.items))
	assert.Zero(t, q.head)
}

func TestQueue_SteadyWalkStaysBounded(t *testing.T) {
	q := NewQueue()
	q.Push(0)
	for i := 1; i <= 10000; i++ {
		q.Push(core.VertexID(i))
		id, ok := q.Pop()
		require.True(t, ok)
		require.Equal(t, core.VertexID(i-1), id)
		require.LessOrEqual(t, len(q.items), compactMin+1)
	}
	assert.Equal(t, []core.VertexID{10000}, q.Items())
	assert.True(t, q.Contains(10000))
}
