package executor

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/utkarsh5026/pollwatch/future"
	"github.com/utkarsh5026/pollwatch/internal/cpu"
	"github.com/utkarsh5026/pollwatch/internal/scheduler"
	"github.com/utkarsh5026/pollwatch/stopwatch"
	"golang.org/x/sync/errgroup"
)

// Runtime is a long-running pool of workers that poll spawned futures.
type Runtime struct {
	config *config

	mu       sync.Mutex
	queue    *scheduler.RunQueue[*task]
	group    *errgroup.Group
	cancel   context.CancelFunc
	started  atomic.Bool
	closed   atomic.Bool
	shutdown atomic.Bool
	stopOnce sync.Once
	live     map[uuid.UUID]*task
}

// New creates a runtime with the given options. No workers run until Start.
func New(opts ...Option) *Runtime {
	cfg := createConfig(opts...)
	return &Runtime{
		config: cfg,
		live:   make(map[uuid.UUID]*task),
	}
}

// Start launches the workers. They run until Shutdown is called or ctx is
// cancelled; either way the runtime is then closed and tasks that have not
// completed end with ErrRuntimeClosed.
func (r *Runtime) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started.Load() {
		return ErrAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	g, ctx := errgroup.WithContext(ctx)

	r.queue = scheduler.NewRunQueue[*task](r.config.queueSize)
	r.group = g
	r.cancel = cancel

	for id := range r.config.workerCount {
		g.Go(func() error {
			return r.worker(ctx, id)
		})
	}

	go func() {
		<-ctx.Done()
		r.stop()
	}()

	r.started.Store(true)
	debugLog("runtime started with %d workers", r.config.workerCount)
	return nil
}

// Spawn wraps f in a stopwatch and queues it on r. The clock starts now.
func Spawn[T any](r *Runtime, f future.Future[T]) (*Handle[T], error) {
	if !r.started.Load() {
		return nil, ErrRuntimeNotStarted
	}
	if r.closed.Load() {
		return nil, ErrRuntimeClosed
	}

	id := uuid.New()
	h := newHandle[T](id)
	sw := stopwatch.New(f, stopwatch.WithClock(r.config.clock))

	// the hook runs before the handle completes so that waiters observe it;
	// the deferred complete still fires if the hook panics
	var ended atomic.Bool
	finish := func(res future.Result[T], elapsed time.Duration, timed bool) {
		if !ended.CompareAndSwap(false, true) {
			return
		}
		defer h.complete(res, elapsed, timed)
		r.taskEnded(id, elapsed, res.Err)
	}

	t := newTask(r, id)
	t.poll = func(cx *future.Context) bool {
		timed, ok := sw.Poll(cx).Value()
		if !ok {
			return false
		}
		finish(future.Ok(timed.Value), timed.Elapsed, true)
		return true
	}
	t.fail = func(err error) {
		finish(future.Err[T](err), 0, false)
	}

	if !r.track(t) {
		return nil, ErrRuntimeClosed
	}

	t.state.Store(stateScheduled)
	r.schedule(t)
	return h, nil
}

// Shutdown stops the workers and waits up to timeout for them to exit.
// Tasks that have not completed end with ErrRuntimeClosed.
func (r *Runtime) Shutdown(timeout time.Duration) error {
	if !r.started.Load() {
		return ErrRuntimeNotStarted
	}
	if r.shutdown.Swap(true) {
		return ErrRuntimeClosed
	}

	r.stop()
	r.cancel()

	done := make(chan error, 1)
	go func() {
		done <- r.group.Wait()
	}()

	select {
	case err := <-done:
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	case <-time.After(timeout):
		return ErrShutdownTimeout
	}
}

// stop closes the runtime to new tasks, releases the workers and fails every
// task that has not ended. Only the first call has any effect.
func (r *Runtime) stop() {
	r.stopOnce.Do(func() {
		r.closed.Store(true)
		r.queue.Close()

		r.mu.Lock()
		pending := make([]*task, 0, len(r.live))
		for _, t := range r.live {
			pending = append(pending, t)
		}
		r.live = make(map[uuid.UUID]*task)
		r.mu.Unlock()

		for _, t := range pending {
			t.fail(ErrRuntimeClosed)
		}

		debugLog("runtime stopped, %d tasks abandoned", len(pending))
	})
}

// Pending returns the number of spawned tasks that have not ended.
func (r *Runtime) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}

func (r *Runtime) worker(ctx context.Context, id int) error {
	if r.config.affinity {
		release := cpu.Pin(id)
		defer release()
	}

	for {
		t, err := r.queue.Dequeue(ctx)
		if errors.Is(err, scheduler.ErrRunQueueClosed) {
			debugLog("worker %d exiting: run queue closed", id)
			return nil
		}
		if err != nil {
			return err
		}

		if r.config.rateLimiter != nil {
			if err := r.config.rateLimiter.Wait(ctx); err != nil {
				return err
			}
		}

		if r.config.beforePoll != nil {
			r.config.beforePoll(t.id)
		}
		t.run()
	}
}

func (r *Runtime) schedule(t *task) {
	if err := r.queue.Enqueue(t); err != nil {
		debugLog("dropping task %s: %v", t.id, err)
	}
}

func (r *Runtime) track(t *task) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed.Load() {
		return false
	}
	r.live[t.id] = t
	return true
}

func (r *Runtime) forget(t *task) {
	r.mu.Lock()
	delete(r.live, t.id)
	r.mu.Unlock()
}

func (r *Runtime) taskEnded(id uuid.UUID, elapsed time.Duration, err error) {
	if r.config.onTaskEnd != nil {
		r.config.onTaskEnd(id, elapsed, err)
	}
}
