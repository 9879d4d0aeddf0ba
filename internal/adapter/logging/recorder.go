package logging

import (
	"context"
	"log/slog"
	"sync"

	"postboard/internal/domain/ports"
)

// Entry is a log line captured by a Recorder.
type Entry struct {
	Level slog.Level
	Msg   string
	Args  []any
}

// Recorder is a ports.Logger that keeps entries in memory, mostly for tests.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

var _ ports.Logger = (*Recorder)(nil)

func (r *Recorder) Debug(_ context.Context, msg string, args ...any) {
	r.add(slog.LevelDebug, msg, args)
}

func (r *Recorder) Info(_ context.Context, msg string, args ...any) {
	r.add(slog.LevelInfo, msg, args)
}

func (r *Recorder) Warn(_ context.Context, msg string, args ...any) {
	r.add(slog.LevelWarn, msg, args)
}

func (r *Recorder) Error(_ context.Context, msg string, args ...any) {
	r.add(slog.LevelError, msg, args)
}

// Entries returns a copy of the captured entries.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Count returns how many entries were logged at level.
func (r *Recorder) Count(level slog.Level) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.entries {
		if e.Level == level {
			n++
		}
	}
	return n
}

func (r *Recorder) add(level slog.Level, msg string, args []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Msg: msg, Args: args})
}
