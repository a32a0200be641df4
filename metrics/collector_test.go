package metrics_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphwalk/builder"
	"github.com/katalvlaran/graphwalk/metrics"
	"github.com/katalvlaran/graphwalk/traversal"
)

// newStepper wires c into a stepper over the graph built by cons.
func newStepper(t *testing.T, c *metrics.Collector, cons ...builder.Constructor) *traversal.Stepper {
	t.Helper()
	g, err := builder.BuildGraph(nil, cons...)
	require.NoError(t, err)
	st, err := traversal.New(g, traversal.WithObserver(c))
	require.NoError(t, err)

	return st
}

func runToEnd(st *traversal.Stepper) {
	for st.State() == traversal.Searching {
		st.Step()
	}
}

func TestCollector_CountsSearch(t *testing.T) {
	c := metrics.NewCollector(false)
	st := newStepper(t, c, builder.Path(4))

	st.Initialize()
	assert.Equal(t, 1.0, testutil.ToFloat64(c.SearchesStarted.WithLabelValues("bfs")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.FrontierSize))

	st.Step()
	assert.Equal(t, 1.0, testutil.ToFloat64(c.FrontierSize), "vertex 1 queued")

	runToEnd(st)
	assert.Equal(t, 4.0, testutil.ToFloat64(c.VisitsTotal.WithLabelValues("bfs")))
	assert.Equal(t, 4.0, testutil.ToFloat64(c.StepsTotal.WithLabelValues("bfs", "visited")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.SearchesFinished.WithLabelValues("bfs")))
	assert.Zero(t, testutil.ToFloat64(c.FrontierSize))
	assert.Zero(t, testutil.ToFloat64(c.Continuations))
}

func TestCollector_ResetSwitchContinue(t *testing.T) {
	c := metrics.NewCollector(false)
	st := newStepper(t, c, builder.Path(2), builder.Path(2))

	st.Initialize()
	runToEnd(st)
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Continuations), "second component reseeded")

	st.Reset()
	st.SwitchAlgorithm()
	st.SwitchAlgorithm()
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Switches.WithLabelValues("priority")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Switches.WithLabelValues("dfs")))

	require.True(t, st.Start())
	st.Step()
	assert.Equal(t, 1.0, testutil.ToFloat64(c.VisitsTotal.WithLabelValues("dfs")))

	expected := `
# HELP graphwalk_resets_total Traversal resets
# TYPE graphwalk_resets_total counter
graphwalk_resets_total 1
`
	require.NoError(t, testutil.GatherAndCompare(c.Registry(), strings.NewReader(expected), "graphwalk_resets_total"))
}

func TestCollector_WriteAndHandler(t *testing.T) {
	c := metrics.NewCollector(false)
	st := newStepper(t, c, builder.Cycle(3))
	st.Initialize()
	runToEnd(st)

	var buf bytes.Buffer
	require.NoError(t, c.Write(&buf))
	assert.Contains(t, buf.String(), `graphwalk_visits_total{algorithm="bfs"} 3`)
	assert.Contains(t, buf.String(), "# TYPE graphwalk_frontier_size gauge")

	path := filepath.Join(t.TempDir(), "graphwalk.prom")
	require.NoError(t, c.WriteFile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, buf.String(), string(data))

	srv := httptest.NewServer(c.Handler())
	defer srv.Close()
	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "graphwalk_searches_finished_total")
}

func TestNewCollector_Runtime(t *testing.T) {
	c := metrics.NewCollector(true)
	families, err := c.Registry().Gather()
	require.NoError(t, err)

	var names []string
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	assert.Contains(t, names, "go_goroutines")
}
