//go:build linux

package cpu

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// core maps a worker to a CPU in [0, runtime.NumCPU()).
func core(workerID int) int {
	n := runtime.NumCPU()
	id := workerID % n
	if id < 0 {
		id += n
	}
	return id
}

// Pin locks the calling goroutine to its OS thread and restricts that thread
// to the core assigned to workerID. Pinning failures are ignored: the worker
// still runs, just unpinned. The returned release must be called on the same
// goroutine.
func Pin(workerID int) (release func()) {
	runtime.LockOSThread()

	var mask unix.CPUSet
	mask.Zero()
	mask.Set(core(workerID))
	_ = unix.SchedSetaffinity(0, &mask) // 0 = current thread

	return runtime.UnlockOSThread
}
