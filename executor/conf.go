package executor

import (
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/utkarsh5026/pollwatch/clock"
	"golang.org/x/time/rate"
)

// Option is a functional option for configuring the runtime.
type Option func(*config)

type config struct {
	workerCount int
	queueSize   int
	rateLimiter *rate.Limiter
	affinity    bool
	clock       clock.Clock

	beforePoll func(id uuid.UUID)
	onTaskEnd  func(id uuid.UUID, elapsed time.Duration, err error)
}

func createConfig(opts ...Option) *config {
	cfg := &config{
		workerCount: runtime.GOMAXPROCS(0),
		clock:       clock.Real(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.queueSize == 0 {
		cfg.queueSize = cfg.workerCount
	}
	return cfg
}

// WithWorkerCount sets the number of worker goroutines.
// If not specified, defaults to runtime.GOMAXPROCS(0).
func WithWorkerCount(count int) Option {
	return func(cfg *config) {
		if count > 0 {
			cfg.workerCount = count
		}
	}
}

// WithQueueSize sets the initial capacity of the run queue. The queue grows
// as needed; this only avoids early reallocations.
func WithQueueSize(size int) Option {
	return func(cfg *config) {
		if size > 0 {
			cfg.queueSize = size
		}
	}
}

// WithRateLimit bounds how many poll attempts the runtime performs per second.
// burst specifies how many polls may run back to back.
// If not specified, no rate limiting is applied.
//
// Example:
//
//	WithRateLimit(100, 10) // 100 polls/sec with burst of 10
func WithRateLimit(pollsPerSecond float64, burst int) Option {
	return func(cfg *config) {
		if pollsPerSecond > 0 && burst > 0 {
			cfg.rateLimiter = rate.NewLimiter(rate.Limit(pollsPerSecond), burst)
		}
	}
}

// WithCPUAffinity locks every worker to its own OS thread and, on Linux,
// pins that thread to a dedicated core.
func WithCPUAffinity(enabled bool) Option {
	return func(cfg *config) {
		cfg.affinity = enabled
	}
}

// WithClock sets the clock used to time spawned tasks. A nil clock is ignored.
func WithClock(c clock.Clock) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.clock = c
		}
	}
}

// WithBeforePoll sets a hook called on the worker goroutine before every poll
// attempt of a task.
func WithBeforePoll(fn func(id uuid.UUID)) Option {
	return func(cfg *config) {
		cfg.beforePoll = fn
	}
}

// WithOnTaskEnd sets a hook called exactly once per task when it ends.
// elapsed is zero whenever err is non-nil.
func WithOnTaskEnd(fn func(id uuid.UUID, elapsed time.Duration, err error)) Option {
	return func(cfg *config) {
		cfg.onTaskEnd = fn
	}
}
