package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/render"
	"github.com/katalvlaran/graphwalk/traversal"
)

// pathGraph builds A–B–C on the X axis with symmetric adjacency.
func pathGraph(t *testing.T) (*core.Graph, []core.VertexID) {
	t.Helper()
	g := core.NewGraph()
	ids := make([]core.VertexID, 0, 3)
	for i, name := range []string{"A", "B", "C"} {
		id, err := g.AddVertex(name, name, core.Position{X: float64(4 * i)})
		require.NoError(t, err)
		ids = append(ids, id)
	}
	for i := 0; i+1 < len(ids); i++ {
		require.NoError(t, g.Connect(ids[i], ids[i+1]))
		require.NoError(t, g.Connect(ids[i+1], ids[i]))
	}

	return g, ids
}

func newWalk(t *testing.T, g *core.Graph, opts ...traversal.Option) (*traversal.Stepper, *render.Board) {
	t.Helper()
	b := render.NewBoard(render.DefaultLabelOffset)
	st, err := traversal.New(g, append(opts, traversal.WithObserver(b))...)
	require.NoError(t, err)
	st.Initialize()

	return st, b
}

func colors(b *render.Board, ids []core.VertexID) []render.Color {
	out := make([]render.Color, len(ids))
	for i, id := range ids {
		out[i], _ = b.Color(id)
	}

	return out
}

func TestBoard_ColorsFollowSteps(t *testing.T) {
	g, ids := pathGraph(t)
	st, b := newWalk(t, g)

	assert.Equal(t, []render.Color{render.Neutral, render.Neutral, render.Neutral}, colors(b, ids))
	assert.Equal(t, "Queue: A", b.StatusLine())

	st.Step()
	assert.Equal(t, []render.Color{render.Visiting, render.Neutral, render.Neutral}, colors(b, ids))
	assert.Equal(t, "Queue: B", b.StatusLine())

	st.Step()
	assert.Equal(t, []render.Color{render.Visited, render.Visiting, render.Neutral}, colors(b, ids))
	edges := b.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, render.Visited, edges[0].Color, "A and B both visited")
	assert.Equal(t, render.Neutral, edges[1].Color)

	st.Step()
	require.Equal(t, traversal.Finished, st.State())
	assert.Equal(t, []render.Color{render.Visited, render.Visited, render.Visited}, colors(b, ids))
	for _, id := range ids {
		// Neutral → Visiting → Visited, never Visited twice.
		assert.Equal(t, 2, b.Recolors(id))
	}
}

func TestBoard_ResetRestoresNeutral(t *testing.T) {
	g, ids := pathGraph(t)
	st, b := newWalk(t, g)
	st.Step()
	st.Step()

	st.Reset()
	assert.Equal(t, []render.Color{render.Neutral, render.Neutral, render.Neutral}, colors(b, ids))
	for _, e := range b.Edges() {
		assert.Equal(t, render.Neutral, e.Color)
	}
	assert.Equal(t, "Queue:", b.StatusLine())

	st.Start()
	st.Step()
	c, ok := b.Color(ids[0])
	require.True(t, ok)
	assert.Equal(t, render.Visiting, c)
}

func TestBoard_AlreadySeenAndSwitch(t *testing.T) {
	g, ids := pathGraph(t)
	_, b := newWalk(t, g)

	b.OnAlreadySeen(ids[2])
	c, _ := b.Color(ids[2])
	assert.Equal(t, render.AlreadySeen, c)

	b.OnSwitch(traversal.BFS, traversal.DFS)
	assert.Equal(t, traversal.DFS, b.Algorithm())
}

func TestBoard_LabelsAndRelabel(t *testing.T) {
	g, ids := pathGraph(t)
	st, b := newWalk(t, g)

	views := b.Vertices()
	require.Len(t, views, 3)
	assert.Equal(t, "B", views[1].Label)
	assert.Equal(t, core.Position{X: 5}, views[1].LabelPos)

	b.Relabel(ids[1], "Bravo")
	label, ok := b.Label(ids[1])
	require.True(t, ok)
	assert.Equal(t, "Bravo", label)

	// A queued vertex renamed in place shows up in the status at once.
	st.Step()
	assert.Equal(t, "Queue: Bravo", b.StatusLine())
	b.Relabel(ids[1], "Beta")
	assert.Equal(t, "Queue: Beta", b.StatusLine())
}

func TestBoard_MissingEntriesAreSilent(t *testing.T) {
	var nilBoard *render.Board
	assert.NotPanics(t, func() {
		nilBoard.OnVisit(traversal.BFS, 0, core.NoVertex)
		nilBoard.OnReset()
		nilBoard.Relabel(0, "x")
	})
	assert.Empty(t, nilBoard.Canvas(10, 5))

	b := render.NewBoard(core.Position{})
	assert.NotPanics(t, func() {
		b.OnVisit(traversal.BFS, 42, 7)
		b.OnAlreadySeen(99)
		b.Relabel(99, "ghost")
	})
	_, ok := b.Color(42)
	assert.False(t, ok)
	assert.Zero(t, b.Recolors(42))
}

func TestCanvas_DrawsMarkersEdgesAndLabels(t *testing.T) {
	g, _ := pathGraph(t)
	st, b := newWalk(t, g)
	st.Step()

	out := b.Canvas(30, 5)
	rows := strings.Split(out, "\n")
	assert.Len(t, rows, 5)
	assert.Equal(t, 3, strings.Count(out, "●"))
	assert.Contains(t, out, "·")
	for _, name := range []string{"A", "B", "C"} {
		assert.Contains(t, out, name)
	}

	assert.Empty(t, b.Canvas(0, 5))
}
