package future

import (
	"sync"
	"time"

	"github.com/utkarsh5026/pollwatch/clock"
)

// sleepFuture completes once its delay has elapsed. The deadline is taken on
// the first poll.
type sleepFuture struct {
	clock clock.Clock
	delay time.Duration

	mu      sync.Mutex
	started bool
	fired   bool
	waker   Waker
	timer   clock.Timer
}

// Sleep returns a future that completes after d, measured on the real clock.
func Sleep(d time.Duration) Future[struct{}] {
	return SleepOn(clock.Real(), d)
}

// SleepOn returns a future that completes after d has elapsed on c.
func SleepOn(c clock.Clock, d time.Duration) Future[struct{}] {
	return &sleepFuture{clock: c, delay: d}
}

func (s *sleepFuture) Poll(cx *Context) Poll[struct{}] {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fired {
		return Ready(struct{}{})
	}

	// register before arming so the callback always sees a waker
	s.waker = cx.Waker()

	if !s.started {
		s.started = true
		if s.delay <= 0 {
			s.fired = true
			return Ready(struct{}{})
		}
		s.timer = s.clock.AfterFunc(s.delay, s.fire)
	}

	return Pending[struct{}]()
}

func (s *sleepFuture) fire() {
	s.mu.Lock()
	s.fired = true
	w := s.waker
	s.mu.Unlock()

	if w != nil {
		w.Wake()
	}
}

// Abandon stops the timer so an unfinished sleep does not outlive its driver.
func (s *sleepFuture) Abandon() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil && !s.fired {
		s.timer.Stop()
	}
	s.waker = nil
}
