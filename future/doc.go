// Package future defines a small poll-based protocol for computations that
// complete at some later point.
//
// A Future is advanced by calling Poll with a Context. Poll either returns a
// ready value or reports that the computation is pending. A pending future
// must arrange for the Context's Waker to be called once it can make further
// progress; the driver then polls it again.
//
// # Basic Usage
//
//	f := future.Sleep(50 * time.Millisecond)
//	_, err := future.Await(ctx, f)
//
// # Building Futures
//
//   - Resolved: completes on the first poll with a fixed value
//   - Sleep / SleepOn: completes after a delay measured on a clock.Clock
//   - Spawn: runs a blocking function on its own goroutine
//   - Map: transforms the value of another future
//   - Func: adapts a plain function into a Future
//
// Futures are polled by a single driver at a time. A future that has
// completed must not be polled again unless its documentation says otherwise.
package future
