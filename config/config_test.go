package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphwalk/config"
	"github.com/katalvlaran/graphwalk/traversal"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, traversal.BFS, cfg.AlgorithmValue())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "graphwalk.env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"GRAPHWALK_SHAPE=cycle\nGRAPHWALK_SIZE=7\nGRAPHWALK_ALGORITHM=dfs\n"), 0o600))

	// Already-set variables win over the file; t.Setenv restores them.
	t.Setenv("GRAPHWALK_SIZE", "9")
	t.Setenv("GRAPHWALK_WATCH", "true")
	t.Setenv("GRAPHWALK_SCENE", "scene.yaml")
	t.Setenv("GRAPHWALK_DEBOUNCE", "250ms")
	t.Setenv("GRAPHWALK_WIDTH", "not-a-number")
	t.Setenv("GRAPHWALK_SHAPE", "")
	t.Setenv("GRAPHWALK_ALGORITHM", "")
	require.NoError(t, os.Unsetenv("GRAPHWALK_SHAPE"))
	require.NoError(t, os.Unsetenv("GRAPHWALK_ALGORITHM"))

	cfg, err := config.Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "cycle", cfg.Shape)
	assert.Equal(t, 9, cfg.Size)
	assert.Equal(t, traversal.DFS, cfg.AlgorithmValue())
	assert.True(t, cfg.Watch)
	assert.Equal(t, 250*time.Millisecond, cfg.Debounce)
	assert.Equal(t, config.Default().Width, cfg.Width, "unparsable values keep the default")
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingEnvFile(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, config.Default().Shape, cfg.Shape)
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"unknown shape", func(c *config.Config) { c.Shape = "hexagon" }},
		{"size zero", func(c *config.Config) { c.Size = 0 }},
		{"unknown algorithm", func(c *config.Config) { c.Algorithm = "dijkstra" }},
		{"log format", func(c *config.Config) { c.LogFormat = "xml" }},
		{"log level", func(c *config.Config) { c.LogLevel = "trace" }},
		{"metrics addr", func(c *config.Config) { c.MetricsAddr = "nowhere" }},
		{"metrics path", func(c *config.Config) { c.MetricsPath = "metrics" }},
		{"negative steps", func(c *config.Config) { c.Steps = -1 }},
		{"tiny canvas", func(c *config.Config) { c.Width = 3 }},
		{"watch without scene", func(c *config.Config) { c.Watch = true }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestValidate_AcceptsMetricsAddr(t *testing.T) {
	cfg := config.Default()
	cfg.MetricsAddr = "localhost:9090"
	assert.NoError(t, cfg.Validate())
}
