//go:build !linux

package cpu

import "runtime"

// Pin locks the calling goroutine to its OS thread. Pinning the thread to
// a core is only supported on Linux.
func Pin(workerID int) (release func()) {
	runtime.LockOSThread()
	return runtime.UnlockOSThread
}
