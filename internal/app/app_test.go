package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard/internal/adapter/logging"
)

type countingPass struct {
	calls atomic.Int32
	err   error
}

func (p *countingPass) Run(context.Context) error {
	p.calls.Add(1)
	return p.err
}

type fakeServer struct {
	mu   sync.Mutex
	addr string
}

func (s *fakeServer) ListenAndServe(ctx context.Context, addr string) error {
	s.mu.Lock()
	s.addr = addr
	s.mu.Unlock()
	<-ctx.Done()
	return nil
}

func TestRun_OneShot(t *testing.T) {
	pass := &countingPass{}
	a := New(pass, &fakeServer{}, &logging.Recorder{}, Options{})

	require.NoError(t, a.Run(context.Background()))
	assert.EqualValues(t, 1, pass.calls.Load())
}

func TestRun_PropagatesRenderError(t *testing.T) {
	boom := errors.New("missing mount point")
	a := New(&countingPass{err: boom}, nil, &logging.Recorder{}, Options{ListenAddr: ":0"})

	assert.ErrorIs(t, a.Run(context.Background()), boom)
}

func TestRun_ServesUntilCancelled(t *testing.T) {
	pass := &countingPass{}
	srv := &fakeServer{}
	a := New(pass, srv, &logging.Recorder{}, Options{ListenAddr: "127.0.0.1:8080"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	require.Eventually(t, func() bool {
		srv.mu.Lock()
		defer srv.mu.Unlock()
		return srv.addr == "127.0.0.1:8080"
	}, time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.EqualValues(t, 1, pass.calls.Load())
}

func TestRun_RefreshesOnSchedule(t *testing.T) {
	pass := &countingPass{}
	a := New(pass, nil, &logging.Recorder{}, Options{RefreshCron: "@every 1s"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	require.Eventually(t, func() bool { return pass.calls.Load() >= 2 }, 3*time.Second, 50*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

// slowPass blocks every scheduled run for hold and records the peak number of
// runs in flight.
type slowPass struct {
	hold     time.Duration
	calls    atomic.Int32
	inflight atomic.Int32
	peak     atomic.Int32
}

func (p *slowPass) Run(context.Context) error {
	if p.calls.Add(1) == 1 {
		return nil
	}
	n := p.inflight.Add(1)
	defer p.inflight.Add(-1)
	for {
		old := p.peak.Load()
		if n <= old || p.peak.CompareAndSwap(old, n) {
			break
		}
	}
	time.Sleep(p.hold)
	return nil
}

func TestRun_ScheduledRunsDoNotOverlap(t *testing.T) {
	pass := &slowPass{hold: 2500 * time.Millisecond}
	rec := &logging.Recorder{}
	a := New(pass, nil, rec, Options{RefreshCron: "@every 1s"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	require.Eventually(t, func() bool { return pass.calls.Load() >= 2 }, 3*time.Second, 20*time.Millisecond)
	// Ticks at 2s and 3s fire while the first scheduled run is still sleeping.
	time.Sleep(2 * time.Second)

	cancel()
	require.NoError(t, <-done)
	assert.EqualValues(t, 1, pass.peak.Load())

	var skipped int
	for _, e := range rec.Entries() {
		if e.Level == slog.LevelInfo && e.Msg == "cron: skip" {
			skipped++
		}
	}
	assert.Positive(t, skipped)
}

func TestRun_InvalidSchedule(t *testing.T) {
	pass := &countingPass{}
	a := New(pass, nil, &logging.Recorder{}, Options{RefreshCron: "not a schedule"})

	assert.Error(t, a.Run(context.Background()))
	assert.Zero(t, pass.calls.Load())
}
