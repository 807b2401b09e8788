package executor

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/utkarsh5026/pollwatch/future"
)

// Handle is the caller's side of a spawned task. It is itself a future that
// completes with the task's Result, so tasks can await one another.
//
// Poll registers only the most recent waker; use Wait or Done when several
// goroutines need to observe the same task.
type Handle[T any] struct {
	id    uuid.UUID
	doneC chan struct{}

	mu      sync.Mutex
	done    bool
	result  future.Result[T]
	elapsed time.Duration
	timed   bool
	waker   future.Waker
}

func newHandle[T any](id uuid.UUID) *Handle[T] {
	return &Handle[T]{id: id, doneC: make(chan struct{})}
}

// complete records the outcome. Only the first call has any effect.
func (h *Handle[T]) complete(res future.Result[T], elapsed time.Duration, timed bool) {
	h.mu.Lock()
	if h.done {
		h.mu.Unlock()
		return
	}
	h.done = true
	h.result = res
	h.elapsed = elapsed
	h.timed = timed
	w := h.waker
	h.waker = nil
	close(h.doneC)
	h.mu.Unlock()

	if w != nil {
		w.Wake()
	}
}

// ID returns the task identifier passed to the runtime hooks.
func (h *Handle[T]) ID() uuid.UUID {
	return h.id
}

// Done returns a channel closed when the task ends.
func (h *Handle[T]) Done() <-chan struct{} {
	return h.doneC
}

// Poll implements future.Future.
func (h *Handle[T]) Poll(cx *future.Context) future.Poll[future.Result[T]] {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.done {
		return future.Ready(h.result)
	}
	h.waker = cx.Waker()
	return future.Pending[future.Result[T]]()
}

// Wait blocks until the task ends or ctx is done.
func (h *Handle[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-h.doneC:
		h.mu.Lock()
		defer h.mu.Unlock()
		return h.result.Value, h.result.Err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Elapsed returns the time between Spawn and the task's completion. The
// boolean is false while the task is running and for tasks that failed.
func (h *Handle[T]) Elapsed() (time.Duration, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.elapsed, h.timed
}
