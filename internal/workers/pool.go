// Package workers provides a bounded execution pool for filesystem commands.
//
// Heavy operations (tree sizing, archiving, transfers) run on a fixed set of
// workers so a burst of requests degrades to queueing instead of unbounded
// goroutine growth. Submission is synchronous: the caller blocks until its
// task ran or its context expired.
package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/GriffinCanCode/FSPro/backend/internal/logging"
	"go.uber.org/zap"
)

// ErrStopped is returned by Submit when the pool shuts down before the
// task could run.
var ErrStopped = errors.New("worker pool stopped")

// Task is a unit of work executed on a pool worker.
type Task func(ctx context.Context)

type job struct {
	ctx  context.Context
	task Task
	done chan error
}

// Pool runs submitted tasks on a fixed number of workers.
type Pool struct {
	count   int
	jobs    chan job
	wg      sync.WaitGroup
	cancel  context.CancelFunc
	log     *logging.Logger
	mu      sync.Mutex
	running bool
}

// New creates a pool with the given worker count and queue depth.
// Non-positive values fall back to a single worker and an unbuffered queue.
func New(count, queue int, log *logging.Logger) *Pool {
	if count < 1 {
		count = 1
	}
	if queue < 0 {
		queue = 0
	}
	return &Pool{
		count: count,
		jobs:  make(chan job, queue),
		log:   log,
	}
}

// Start launches the workers. Starting a running pool is an error.
func (p *Pool) Start(ctx context.Context) error {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return fmt.Errorf("pool is already running")
	}
	p.running = true
	p.mu.Unlock()

	workerCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	for i := 0; i < p.count; i++ {
		p.wg.Add(1)
		go p.run(workerCtx, i+1)
	}

	p.log.Info("worker pool started", zap.Int("workers", p.count))
	return nil
}

func (p *Pool) run(ctx context.Context, id int) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			p.log.Debug("worker stopping", zap.Int("worker", id))
			p.drain()
			return
		case j, ok := <-p.jobs:
			if !ok {
				return
			}
			p.execute(j)
		}
	}
}

func (p *Pool) execute(j job) {
	if j.ctx.Err() != nil {
		// Caller gave up while the task sat in the queue.
		j.done <- j.ctx.Err()
		return
	}
	j.task(j.ctx)
	j.done <- nil
}

// drain releases jobs still sitting in the queue at shutdown so their
// submitters unblock immediately instead of waiting out their contexts.
func (p *Pool) drain() {
	for {
		select {
		case j := <-p.jobs:
			j.done <- ErrStopped
		default:
			return
		}
	}
}

// Submit enqueues task and waits for it to finish. It returns the context
// error when the caller's context expires before the task completes (an
// already-running task still finishes on its worker), and ErrStopped when
// the pool shuts down while the task is still queued.
func (p *Pool) Submit(ctx context.Context, task Task) error {
	j := job{ctx: ctx, task: task, done: make(chan error, 1)}

	select {
	case p.jobs <- j:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-j.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop shuts the pool down, waiting for in-flight tasks up to the
// context deadline.
func (p *Pool) Stop(ctx context.Context) error {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return nil
	}
	p.running = false
	p.mu.Unlock()

	if p.cancel != nil {
		p.cancel()
	}

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.log.Info("worker pool stopped")
		return nil
	case <-ctx.Done():
		p.log.Warn("timeout waiting for workers to stop")
		return ctx.Err()
	}
}

// IsRunning reports whether the pool has been started and not stopped.
func (p *Pool) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}
