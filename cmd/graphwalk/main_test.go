package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphwalk/config"
)

// execute runs the command tree with args on default settings.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg := config.Default()
	root := newRootCmd(&cfg)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--log-level", "error"))
	err := root.Execute()

	return out.String(), err
}

func TestPlay_PathBFS(t *testing.T) {
	out, err := execute(t, "play", "--shape", "path", "--size", "4")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "path(4) · BFS · Queue: A", lines[0])
	assert.Contains(t, lines[1], "visited")
	assert.True(t, strings.HasSuffix(lines[1], "| Queue: B"), lines[1])
	assert.True(t, strings.HasSuffix(lines[4], "| Queue:"), lines[4])
	assert.Equal(t, "finished: visited A, B, C, D", lines[5])
}

func TestPlay_StepLimitAndMetrics(t *testing.T) {
	prom := filepath.Join(t.TempDir(), "run.prom")
	out, err := execute(t, "play", "--shape", "cycle", "--size", "5", "-a", "dfs",
		"--steps", "2", "--metrics-out", prom)
	require.NoError(t, err)
	assert.Contains(t, out, "searching: visited A, ")

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), `graphwalk_visits_total{algorithm="dfs"} 2`)
}

func TestPlay_SceneFile(t *testing.T) {
	out, err := execute(t, "play", "--scene", filepath.Join("..", "..", "scene", "testdata", "diamond.yaml"),
		"--algorithm", "priority")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "diamond · Priority BFS · Queue: A"), out)
	assert.Contains(t, out, "finished: visited A, B, Vertex 3, D")
}

func TestPlay_Disconnected(t *testing.T) {
	out, err := execute(t, "play", "--shape", "random", "--size", "6", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "finished: visited ")
	// Every vertex is reached, reseeding across components when needed.
	last := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, strings.Split(strings.TrimPrefix(last[len(last)-1], "finished: visited "), ", "), 6)
}

func TestRun_FallsBackWithoutTerminal(t *testing.T) {
	out, err := execute(t, "run", "--shape", "star", "--size", "4", "--width", "30", "--height", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "star(4) · BFS")
	assert.Contains(t, out, "●", "canvas printed after the run")
}

func TestRoot_InvalidConfig(t *testing.T) {
	_, err := execute(t, "play", "--shape", "hexagon")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = execute(t, "run", "--watch")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "graphwalk dev\n", out)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))
}
