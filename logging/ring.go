package logging

import (
	"bytes"
	"sync"

	"go.uber.org/zap/zapcore"
)

// DefaultRingSize is the line capacity used when NewRing gets a size < 1.
const DefaultRingSize = 200

// Ring is a bounded in-memory zapcore.WriteSyncer holding the most recent
// log lines. Safe for concurrent use.
type Ring struct {
	mu    sync.Mutex
	lines []string
	next  int
	full  bool
	part  []byte
	seq   uint64
}

var _ zapcore.WriteSyncer = (*Ring)(nil)

// NewRing creates a Ring keeping the last size lines.
func NewRing(size int) *Ring {
	if size < 1 {
		size = DefaultRingSize
	}

	return &Ring{lines: make([]string, size)}
}

// Write appends complete lines from p; a trailing partial line is held
// until its newline arrives.
func (r *Ring) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	buf := append(r.part, p...)
	for {
		i := bytes.IndexByte(buf, '\n')
		if i < 0 {
			break
		}
		r.push(string(buf[:i]))
		buf = buf[i+1:]
	}
	r.part = append([]byte(nil), buf...)

	return len(p), nil
}

// Sync is a no-op.
func (r *Ring) Sync() error { return nil }

// Lines returns the retained lines, oldest first.
func (r *Ring) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.full {
		return append([]string(nil), r.lines[:r.next]...)
	}
	out := make([]string, 0, len(r.lines))
	out = append(out, r.lines[r.next:]...)

	return append(out, r.lines[:r.next]...)
}

// Seq returns the number of lines written so far; it changes whenever
// Lines would return something new.
func (r *Ring) Seq() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.seq
}

func (r *Ring) push(line string) {
	r.lines[r.next] = line
	r.next++
	r.seq++
	if r.next == len(r.lines) {
		r.next = 0
		r.full = true
	}
}
