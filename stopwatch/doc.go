// Package stopwatch times asynchronous computations.
//
// A Stopwatch wraps a future.Future and, when the wrapped future completes,
// yields its value together with the time elapsed since the Stopwatch was
// created. The wrapped value is never altered.
//
// # Basic Usage
//
//	sw := stopwatch.New(future.Sleep(2 * time.Second))
//	timed, err := future.Await(ctx, sw)
//	// timed.Value == struct{}{}, timed.Elapsed >= 2s
//
// Or with the blocking helper:
//
//	_, elapsed, err := stopwatch.Measure(ctx, future.Sleep(2*time.Second))
//
// # Fallible Computations
//
// TryTime and TryMeasure are for futures producing a future.Result. On
// success the elapsed time is spliced into the payload; on failure the error
// is passed through untouched and the elapsed time is discarded:
//
//	res, _ := future.Await(ctx, stopwatch.TryTime(fetch))
//	if res.Err != nil {
//	    // no duration available here
//	}
//	fmt.Println(res.Value.Value, res.Value.Elapsed)
//
// Callers that need timing on the failure path should use Time and inspect
// the Result themselves.
//
// # When The Clock Starts
//
// The start instant is captured by New, not by the first poll. Time spent
// queued before the first poll is part of the measurement.
//
// # Configuration Options
//
//   - WithClock(c): Measure against c instead of the real monotonic clock
//   - WithOnStop(fn): Call fn with the elapsed time when the stopwatch completes
package stopwatch
