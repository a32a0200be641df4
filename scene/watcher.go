package scene

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is the quiet period a Watcher waits for before reloading.
const DefaultDebounce = 100 * time.Millisecond

// Handler receives each reload: a validated Definition, or the load error.
// It is called from the Watcher's goroutine.
type Handler func(def *Definition, err error)

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the debounce window. Non-positive values are ignored.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithWatchLogger sets the logger for watch events.
func WithWatchLogger(l *zap.Logger) WatcherOption {
	return func(w *Watcher) {
		if l != nil {
			w.log = l
		}
	}
}

// Watcher reloads a scene file whenever it changes on disk.
//
// The parent directory is watched rather than the file itself, so editors
// that save by rename-and-replace keep triggering reloads. Bursts of events
// are collapsed into one reload after the debounce window.
type Watcher struct {
	path     string
	handler  Handler
	debounce time.Duration
	log      *zap.Logger

	watcher  *fsnotify.Watcher
	done     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once

	mu      sync.Mutex
	started bool
}

// NewWatcher creates a Watcher for the scene file at path. Call Start to
// begin watching and Close to stop.
func NewWatcher(path string, handler Handler, opts ...WatcherOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("scene: watch %s: %w", path, err)
	}
	if _, err = FormatOf(abs); err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("scene: watch %s: %w", path, err)
	}

	w := &Watcher{
		path:     abs,
		handler:  handler,
		debounce: DefaultDebounce,
		log:      zap.NewNop(),
		watcher:  fw,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Start begins watching. It returns immediately; reloads are delivered to
// the handler until ctx is canceled or Close is called. Calling Start twice
// is a no-op.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return nil
	}
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("scene: watch %s: %w", w.path, err)
	}
	w.started = true

	w.wg.Add(1)
	go w.loop(ctx)
	w.log.Info("watching scene", zap.String("path", w.path))

	return nil
}

// Close stops watching and waits for the event loop to exit.
func (w *Watcher) Close() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.wg.Wait()
	})

	return err
}

// loop filters events for the scene file and debounces reloads.
func (w *Watcher) loop(ctx context.Context) {
	defer w.wg.Done()

	var timer *time.Timer
	var timerC <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("scene watch error", zap.Error(err))
		case <-timerC:
			timer, timerC = nil, nil
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	def, err := Load(w.path)
	if err != nil {
		w.log.Warn("scene reload failed", zap.String("path", w.path), zap.Error(err))
	} else {
		w.log.Info("scene reloaded",
			zap.String("path", w.path),
			zap.Int("vertices", len(def.Vertices)),
		)
	}
	if w.handler != nil {
		w.handler(def, err)
	}
}
