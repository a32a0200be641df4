package scene_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphwalk/scene"
)

type reload struct {
	def *scene.Definition
	err error
}

// waitFor returns the first reload accepted by match, skipping stale ones.
func waitFor(t *testing.T, got <-chan reload, match func(reload) bool) reload {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case r := <-got:
			if match(r) {
				return r
			}
		case <-deadline:
			t.Fatal("no matching reload delivered")
			return reload{}
		}
	}
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "live.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vertices:\n  - key: a\n"), 0o644))

	got := make(chan reload, 8)
	w, err := scene.NewWatcher(path, func(def *scene.Definition, err error) {
		select {
		case got <- reload{def, err}:
		default:
		}
	}, scene.WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	require.NoError(t, w.Start(ctx), "second Start is a no-op")

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("vertices:\n  - key: a\n    name: Alpha\n"), 0o644))

	r := waitFor(t, got, func(r reload) bool {
		return r.err == nil && len(r.def.Vertices) == 1 && r.def.Vertices[0].Name == "Alpha"
	})
	assert.Equal(t, "a", r.def.Vertices[0].Key)

	require.NoError(t, os.WriteFile(path, []byte("vertices:\n  - key: a\n    neighbors: [b]\n"), 0o644))
	r = waitFor(t, got, func(r reload) bool { return errors.Is(r.err, scene.ErrUnknownVertex) })
	assert.Nil(t, r.def)
}

func TestNewWatcher_RejectsUnknownFormat(t *testing.T) {
	_, err := scene.NewWatcher(filepath.Join(t.TempDir(), "scene.txt"), nil)
	assert.ErrorIs(t, err, scene.ErrUnsupportedFormat)
}
