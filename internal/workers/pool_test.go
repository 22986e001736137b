package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/FSPro/backend/internal/logging"
)

func newTestPool(t *testing.T, count, queue int) *Pool {
	t.Helper()
	p := New(count, queue, logging.NewDefault())
	require.NoError(t, p.Start(context.Background()))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		p.Stop(ctx)
	})
	return p
}

func TestSubmitRunsTask(t *testing.T) {
	p := newTestPool(t, 2, 4)

	var ran atomic.Bool
	err := p.Submit(context.Background(), func(ctx context.Context) {
		ran.Store(true)
	})
	require.NoError(t, err)
	assert.True(t, ran.Load())
}

func TestSubmitIsSynchronous(t *testing.T) {
	p := newTestPool(t, 1, 0)

	var counter int64
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := p.Submit(context.Background(), func(ctx context.Context) {
				atomic.AddInt64(&counter, 1)
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(10), atomic.LoadInt64(&counter))
}

func TestSubmitHonorsContext(t *testing.T) {
	p := newTestPool(t, 1, 0)

	// Occupy the only worker.
	release := make(chan struct{})
	go p.Submit(context.Background(), func(ctx context.Context) {
		<-release
	})
	time.Sleep(20 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	err := p.Submit(ctx, func(ctx context.Context) {})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
}

func TestStopReleasesQueuedSubmits(t *testing.T) {
	p := New(1, 4, logging.NewDefault())
	require.NoError(t, p.Start(context.Background()))

	// Occupy the only worker so the next submit stays queued.
	release := make(chan struct{})
	started := make(chan struct{})
	go p.Submit(context.Background(), func(ctx context.Context) {
		close(started)
		<-release
	})
	<-started

	queued := make(chan error, 1)
	go func() {
		queued <- p.Submit(context.Background(), func(ctx context.Context) {})
	}()
	time.Sleep(20 * time.Millisecond)

	stopped := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		stopped <- p.Stop(ctx)
	}()
	time.Sleep(20 * time.Millisecond)
	close(release)

	// The queued submit either ran before the worker noticed the
	// cancellation or was drained with ErrStopped; it must not block
	// until its context expires.
	select {
	case err := <-queued:
		if err != nil {
			assert.ErrorIs(t, err, ErrStopped)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("queued submit did not unblock during shutdown")
	}
	require.NoError(t, <-stopped)
}

func TestStartTwice(t *testing.T) {
	p := newTestPool(t, 1, 0)
	assert.Error(t, p.Start(context.Background()))
	assert.True(t, p.IsRunning())
}

func TestStopIdempotent(t *testing.T) {
	p := New(1, 0, logging.NewDefault())
	require.NoError(t, p.Start(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, p.Stop(ctx))
	require.NoError(t, p.Stop(ctx))
	assert.False(t, p.IsRunning())
}
