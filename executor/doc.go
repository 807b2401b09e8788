// Package executor drives futures to completion on a pool of worker
// goroutines and times every task it runs.
//
// # Basic Usage
//
//	rt := executor.New(executor.WithWorkerCount(4))
//	if err := rt.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer rt.Shutdown(5 * time.Second)
//
//	h, _ := executor.Spawn(rt, future.Sleep(100*time.Millisecond))
//	_, err := h.Wait(ctx)
//	elapsed, _ := h.Elapsed()
//
// Each spawned future is wrapped in a stopwatch.Stopwatch when it is
// spawned, so the elapsed time reported by a Handle includes time spent in
// the run queue.
//
// # Scheduling
//
// A task is queued when spawned and re-queued whenever its waker fires. A
// task is never polled by two workers at once: a wake that arrives while the
// task is being polled is remembered and the task is re-queued once that poll
// returns pending.
//
// # Configuration Options
//
//   - WithWorkerCount(n): Set number of worker goroutines (default: GOMAXPROCS)
//   - WithQueueSize(n): Initial run queue capacity (default: worker count)
//   - WithRateLimit(pollsPerSecond, burst): Bound the rate of poll attempts
//   - WithCPUAffinity(enabled): Pin each worker to its own core (Linux)
//   - WithClock(c): Clock used to time tasks
//   - WithBeforePoll(fn): Hook called before each poll attempt
//   - WithOnTaskEnd(fn): Hook called once per task with its elapsed time or error
//
// # Error Handling
//
// A panic raised while polling a task is recovered and delivered through the
// task's Handle as an error carrying the stack trace. Tasks still pending
// when the runtime shuts down complete with ErrRuntimeClosed. No elapsed time
// is reported for tasks that end with an error.
package executor
