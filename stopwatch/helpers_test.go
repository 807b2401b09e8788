package stopwatch

import (
	"sync/atomic"
	"time"

	"github.com/utkarsh5026/pollwatch/clock"
	"github.com/utkarsh5026/pollwatch/future"
)

// scripted stays pending for a fixed number of polls, then completes.
type scripted[T any] struct {
	pendingPolls int
	value        T
	polls        int
	contexts     []*future.Context
}

func (s *scripted[T]) Poll(cx *future.Context) future.Poll[T] {
	s.polls++
	s.contexts = append(s.contexts, cx)
	if s.polls <= s.pendingPolls {
		return future.Pending[T]()
	}
	return future.Ready(s.value)
}

// countingClock wraps a clock and counts reads.
type countingClock struct {
	clock.Clock
	nows   atomic.Int32
	sinces atomic.Int32
}

func (c *countingClock) Now() time.Time {
	c.nows.Add(1)
	return c.Clock.Now()
}

func (c *countingClock) Since(t time.Time) time.Duration {
	c.sinces.Add(1)
	return c.Clock.Since(t)
}

// wakeCounter counts wake-ups.
type wakeCounter struct {
	n atomic.Int32
}

func (w *wakeCounter) Wake() { w.n.Add(1) }

func newFake() *clock.Fake {
	return clock.NewFake(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
}
