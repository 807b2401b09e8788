package clock

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestRealClock(t *testing.T) {
	c := Real()

	start := c.Now()
	time.Sleep(10 * time.Millisecond)

	if elapsed := c.Since(start); elapsed < 10*time.Millisecond {
		t.Errorf("expected at least 10ms elapsed, got %v", elapsed)
	}

	fired := make(chan struct{})
	c.AfterFunc(5*time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("AfterFunc never fired")
	}
}

func TestFake_Advance(t *testing.T) {
	t.Run("moves time forward", func(t *testing.T) {
		start := time.Unix(1_000, 0)
		c := NewFake(start)

		c.Advance(2 * time.Second)

		if got := c.Since(start); got != 2*time.Second {
			t.Errorf("expected 2s, got %v", got)
		}
	})

	t.Run("negative advance is ignored", func(t *testing.T) {
		start := time.Unix(1_000, 0)
		c := NewFake(start)

		c.Advance(-time.Second)

		if !c.Now().Equal(start) {
			t.Errorf("expected clock to stay at %v, got %v", start, c.Now())
		}
	})

	t.Run("fires due timers in deadline order", func(t *testing.T) {
		c := NewFake(time.Unix(0, 0))

		var order []int
		c.AfterFunc(3*time.Second, func() { order = append(order, 3) })
		c.AfterFunc(1*time.Second, func() { order = append(order, 1) })
		c.AfterFunc(5*time.Second, func() { order = append(order, 5) })

		c.Advance(4 * time.Second)

		if len(order) != 2 || order[0] != 1 || order[1] != 3 {
			t.Errorf("expected [1 3], got %v", order)
		}
		if c.Timers() != 1 {
			t.Errorf("expected 1 armed timer, got %d", c.Timers())
		}

		c.Advance(time.Second)
		if len(order) != 3 || order[2] != 5 {
			t.Errorf("expected [1 3 5], got %v", order)
		}
	})

	t.Run("stopped timer never fires", func(t *testing.T) {
		c := NewFake(time.Unix(0, 0))

		var fired atomic.Bool
		timer := c.AfterFunc(time.Second, func() { fired.Store(true) })

		if !timer.Stop() {
			t.Error("expected Stop to report an armed timer")
		}
		if timer.Stop() {
			t.Error("expected second Stop to return false")
		}

		c.Advance(time.Minute)
		if fired.Load() {
			t.Error("stopped timer fired")
		}
	})

	t.Run("non-positive delay fires immediately", func(t *testing.T) {
		c := NewFake(time.Unix(0, 0))

		fired := make(chan struct{})
		c.AfterFunc(0, func() { close(fired) })

		select {
		case <-fired:
		case <-time.After(time.Second):
			t.Fatal("expected immediate fire")
		}
	})
}
