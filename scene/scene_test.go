package scene_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/scene"
	"github.com/katalvlaran/graphwalk/traversal"
)

func TestLoad_YAMLAndHCLAgree(t *testing.T) {
	y, err := scene.Load(filepath.Join("testdata", "diamond.yaml"))
	require.NoError(t, err)
	h, err := scene.Load(filepath.Join("testdata", "diamond.hcl"))
	require.NoError(t, err)

	if diff := cmp.Diff(y, h); diff != "" {
		t.Errorf("yaml and hcl definitions differ (-yaml +hcl):\n%s", diff)
	}
	assert.Equal(t, "diamond", y.Name)
	require.Len(t, y.Vertices, 4)
	assert.Equal(t, []string{"b", "c"}, y.Vertices[0].Neighbors)
	assert.Empty(t, y.Vertices[2].Name)
}

func TestFormatOf(t *testing.T) {
	for path, want := range map[string]scene.Format{
		"a.yaml": scene.FormatYAML,
		"a.YML":  scene.FormatYAML,
		"a.hcl":  scene.FormatHCL,
	} {
		got, err := scene.FormatOf(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
	_, err := scene.FormatOf("scene.json")
	assert.ErrorIs(t, err, scene.ErrUnsupportedFormat)
}

func TestParse_Errors(t *testing.T) {
	_, err := scene.Parse([]byte("vertices: [\n"), scene.FormatYAML, "bad.yaml")
	assert.ErrorIs(t, err, scene.ErrParse)

	_, err = scene.Parse([]byte("bogus: 1\n"), scene.FormatYAML, "strict.yaml")
	assert.ErrorIs(t, err, scene.ErrParse, "unknown fields are rejected")

	_, err = scene.Parse([]byte(`vertex {}`), scene.FormatHCL, "bad.hcl")
	assert.ErrorIs(t, err, scene.ErrParse, "vertex block needs a key label")

	def, err := scene.Parse(nil, scene.FormatYAML, "empty.yaml")
	require.NoError(t, err)
	assert.Empty(t, def.Vertices)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		def  scene.Definition
		want error
	}{
		{
			name: "missing key",
			def:  scene.Definition{Vertices: []scene.VertexDef{{Name: "x"}}},
			want: scene.ErrInvalidScene,
		},
		{
			name: "too many coordinates",
			def:  scene.Definition{Vertices: []scene.VertexDef{{Key: "a", Position: []float64{1, 2, 3, 4}}}},
			want: scene.ErrInvalidScene,
		},
		{
			name: "duplicate key",
			def:  scene.Definition{Vertices: []scene.VertexDef{{Key: "a"}, {Key: "a"}}},
			want: scene.ErrDuplicateKey,
		},
		{
			name: "unknown neighbor",
			def:  scene.Definition{Vertices: []scene.VertexDef{{Key: "a", Neighbors: []string{"b"}}}},
			want: scene.ErrUnknownVertex,
		},
		{
			name: "unknown goal",
			def:  scene.Definition{Goal: "z", Vertices: []scene.VertexDef{{Key: "a"}}},
			want: scene.ErrUnknownVertex,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, scene.Validate(&tc.def), tc.want)
		})
	}

	assert.NoError(t, scene.Validate(&scene.Definition{Vertices: []scene.VertexDef{{Key: "lonely"}}}),
		"absent neighbors mean no neighbors")
	assert.ErrorIs(t, scene.Validate(nil), scene.ErrInvalidScene)

	_, err := scene.Load(filepath.Join("testdata", "unknown_neighbor.yaml"))
	assert.ErrorIs(t, err, scene.ErrUnknownVertex)
}

func loadDiamond(t *testing.T) (*scene.Definition, *scene.Scene) {
	t.Helper()
	def, err := scene.Load(filepath.Join("testdata", "diamond.yaml"))
	require.NoError(t, err)
	sc, err := scene.Build(def)
	require.NoError(t, err)

	return def, sc
}

func TestBuild(t *testing.T) {
	_, sc := loadDiamond(t)
	g := sc.Graph

	assert.Equal(t, 4, g.Len())
	assert.True(t, sc.HasStart)
	assert.True(t, sc.HasGoal)
	assert.Equal(t, core.VertexID(0), sc.Start)
	assert.Equal(t, core.VertexID(3), sc.Goal)
	assert.True(t, sc.HasLabelOffset)
	assert.Equal(t, core.Position{X: 1, Y: 0.5}, sc.LabelOffset)

	assert.Equal(t, 5, g.Priority(1))
	assert.Equal(t, core.Position{X: 2, Y: -2}, g.Position(2))
	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{1, 2}, nbrs)
	assert.Len(t, sc.Options(), 2)
}

func TestBuild_DrivesBestFirst(t *testing.T) {
	_, sc := loadDiamond(t)
	opts := append(sc.Options(), traversal.WithAlgorithm(traversal.BestFirst))
	st, err := traversal.New(sc.Graph, opts...)
	require.NoError(t, err)
	st.Initialize()

	for st.State() == traversal.Searching {
		st.Step()
	}
	visited := sc.Graph.Names(st.Visited())
	assert.Equal(t, "A", visited[0])
	assert.Equal(t, "D", visited[len(visited)-1])
	assert.Equal(t, "Vertex 3", sc.Graph.Name(2), "blank name gets an ordinal")
}

func TestRelabel(t *testing.T) {
	def, sc := loadDiamond(t)
	sc.Graph.AssignNames()

	def.Vertices[1].Name = "Bravo"
	def.Vertices[3].Priority = 9
	changed, err := scene.Relabel(sc.Graph, def)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{1, 3}, changed)
	assert.Equal(t, "Bravo", sc.Graph.Name(1))
	assert.Equal(t, 9, sc.Graph.Priority(3))
	assert.Equal(t, "Vertex 3", sc.Graph.Name(2), "blank names keep the ordinal")

	changed, err = scene.Relabel(sc.Graph, def)
	require.NoError(t, err)
	assert.Empty(t, changed)

	def.Vertices[0].Neighbors = []string{"b"}
	assert.False(t, scene.Compatible(sc.Graph, def))
	_, err = scene.Relabel(sc.Graph, def)
	assert.ErrorIs(t, err, scene.ErrTopologyChanged)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := scene.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExampleScenes(t *testing.T) {
	walk := func(t *testing.T, path string, alg traversal.Algorithm) []string {
		t.Helper()
		def, err := scene.Load(path)
		require.NoError(t, err)
		sc, err := scene.Build(def)
		require.NoError(t, err)
		st, err := traversal.New(sc.Graph, append(sc.Options(), traversal.WithAlgorithm(alg))...)
		require.NoError(t, err)
		st.Initialize()
		for i := 0; st.State() == traversal.Searching; i++ {
			require.Less(t, i, 100)
			st.Step()
		}

		return sc.Graph.Names(st.Visited())
	}

	dir := filepath.Join("..", "examples", "scenes")
	t.Run("campus bfs reseeds the annex", func(t *testing.T) {
		got := walk(t, filepath.Join(dir, "campus.yaml"), traversal.BFS)
		want := []string{"Gate", "Quad", "Library", "Vertex 5", "Cafe", "Lab", "Annex", "Vertex 8"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("visit order (-want +got):\n%s", diff)
		}
	})
	t.Run("metro best-first stops at the harbor", func(t *testing.T) {
		got := walk(t, filepath.Join(dir, "metro.hcl"), traversal.BestFirst)
		assert.Equal(t, []string{"North", "Central", "East", "Harbor"}, got)
	})
}
