// Package clock provides the monotonic time source used to measure elapsed
// durations, with a real implementation and a manually driven fake for tests.
package clock

import "time"

// Clock abstracts time so that elapsed-time measurements can be made
// deterministic in tests.
//
// Implementations must be monotonic: Since never returns a value smaller than
// an earlier call for the same t.
type Clock interface {
	// Now returns the current instant.
	Now() time.Time

	// Since returns the time elapsed since t.
	Since(t time.Time) time.Duration

	// AfterFunc calls f in its own goroutine once d has elapsed.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a handle to a pending AfterFunc call.
type Timer interface {
	// Stop prevents the timer from firing. It returns false if the timer
	// already fired or was stopped.
	Stop() bool
}

type realClock struct{}

// Real returns a Clock backed by the time package. Instants returned by Now
// carry a monotonic reading, so Since is immune to wall-clock adjustments.
func Real() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
