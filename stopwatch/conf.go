package stopwatch

import (
	"time"

	"github.com/utkarsh5026/pollwatch/clock"
)

// Option is a functional option for configuring a Stopwatch.
type Option func(*config)

type config struct {
	clock  clock.Clock
	onStop func(time.Duration)
}

func createConfig(opts ...Option) *config {
	cfg := &config{clock: clock.Real()}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithClock sets the clock used to capture the start instant and compute the
// elapsed time. A nil clock is ignored.
func WithClock(c clock.Clock) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.clock = c
		}
	}
}

// WithOnStop registers a hook called exactly once, with the elapsed time, at
// the moment the wrapped future completes. It is never called for a stopwatch
// that is abandoned before completion.
func WithOnStop(fn func(elapsed time.Duration)) Option {
	return func(cfg *config) {
		cfg.onStop = fn
	}
}
