package future

import (
	"context"
	"sync"
)

// spawned exposes the return value of a goroutine as a future.
type spawned[T any] struct {
	mu    sync.Mutex
	done  bool
	value T
	waker Waker
}

// Spawn runs fn on a new goroutine and returns a future that completes with
// its return value. The context is handed to fn; cancelling it is the only way
// to stop fn early.
func Spawn[T any](ctx context.Context, fn func(ctx context.Context) T) Future[T] {
	s := &spawned[T]{}
	go s.run(ctx, fn)
	return s
}

func (s *spawned[T]) run(ctx context.Context, fn func(ctx context.Context) T) {
	v := fn(ctx)

	s.mu.Lock()
	s.value = v
	s.done = true
	w := s.waker
	s.waker = nil
	s.mu.Unlock()

	if w != nil {
		w.Wake()
	}
}

func (s *spawned[T]) Poll(cx *Context) Poll[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done {
		return Ready(s.value)
	}
	s.waker = cx.Waker()
	return Pending[T]()
}
