package stopwatch

import (
	"time"

	"github.com/utkarsh5026/pollwatch/clock"
	"github.com/utkarsh5026/pollwatch/future"
)

// Timed pairs the value of a completed future with the time it took.
type Timed[T any] struct {
	Value   T
	Elapsed time.Duration
}

// noCopy makes go vet's copylocks check flag copies of a Stopwatch.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Stopwatch is a future that completes with the value of its inner future
// and the time elapsed between New and that completion.
//
// A Stopwatch must not be copied once it has been polled; the inner future
// may hold state that refers to itself. It is not safe for concurrent polls,
// which the poll protocol never performs.
type Stopwatch[T any] struct {
	_ noCopy

	clock  clock.Clock
	start  time.Time
	inner  future.Future[T]
	onStop func(time.Duration)

	out  Timed[T]
	done bool
}

// New wraps inner and starts the clock immediately.
func New[T any](inner future.Future[T], opts ...Option) *Stopwatch[T] {
	cfg := createConfig(opts...)
	return &Stopwatch[T]{
		clock:  cfg.clock,
		start:  cfg.clock.Now(),
		inner:  inner,
		onStop: cfg.onStop,
	}
}

// Poll delegates to the inner future with cx unchanged. While the inner
// future is pending Poll reports pending and never reads the clock. On the
// attempt in which the inner future completes, the elapsed time is computed
// and returned alongside its value.
//
// Polling a completed Stopwatch returns the same Timed value again without
// touching the inner future or the clock.
func (s *Stopwatch[T]) Poll(cx *future.Context) future.Poll[Timed[T]] {
	if s.done {
		return future.Ready(s.out)
	}

	v, ok := s.inner.Poll(cx).Value()
	if !ok {
		return future.Pending[Timed[T]]()
	}

	s.out = Timed[T]{Value: v, Elapsed: s.clock.Since(s.start)}
	s.done = true
	s.inner = nil

	if s.onStop != nil {
		s.onStop(s.out.Elapsed)
	}
	return future.Ready(s.out)
}

// Abandon releases the inner future's resources when the stopwatch is
// dropped before completion. No elapsed time is computed and the OnStop hook
// does not run.
func (s *Stopwatch[T]) Abandon() {
	if !s.done {
		future.Abandon(s.inner)
	}
}

// Started returns the instant captured by New.
func (s *Stopwatch[T]) Started() time.Time {
	return s.start
}

// Done reports whether the inner future has completed.
func (s *Stopwatch[T]) Done() bool {
	return s.done
}
