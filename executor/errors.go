package executor

import "errors"

var (
	// ErrAlreadyStarted is returned by Start on a running runtime.
	ErrAlreadyStarted = errors.New("runtime already started")

	// ErrRuntimeNotStarted is returned when spawning on, or shutting down, a
	// runtime that was never started.
	ErrRuntimeNotStarted = errors.New("runtime not started")

	// ErrRuntimeClosed is returned when spawning on a runtime that has shut
	// down. Tasks still pending at shutdown complete with it.
	ErrRuntimeClosed = errors.New("runtime is closed")

	// ErrShutdownTimeout is returned when workers do not exit in time.
	ErrShutdownTimeout = errors.New("shutdown timed out")
)
