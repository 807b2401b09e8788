package stopwatch

import (
	"context"
	"time"

	"github.com/utkarsh5026/pollwatch/future"
)

// Time wraps inner in a Stopwatch and returns it as a plain future. It exists
// so that call sites need not name the Stopwatch type.
func Time[T any](inner future.Future[T], opts ...Option) future.Future[Timed[T]] {
	return New(inner, opts...)
}

// TryTime times a fallible future. A successful Result is returned with the
// elapsed time spliced into its payload. A failed Result is returned with its
// error unchanged and no elapsed time.
func TryTime[T any](
	inner future.Future[future.Result[T]],
	opts ...Option,
) future.Future[future.Result[Timed[T]]] {
	return future.Map(New(inner, opts...), splice[T])
}

func splice[T any](t Timed[future.Result[T]]) future.Result[Timed[T]] {
	if t.Value.Err != nil {
		return future.Err[Timed[T]](t.Value.Err)
	}
	return future.Ok(Timed[T]{Value: t.Value.Value, Elapsed: t.Elapsed})
}

// Measure drives inner to completion on the calling goroutine and returns its
// value and the elapsed time. The error is non-nil only when ctx ends first,
// in which case no elapsed time is produced.
func Measure[T any](ctx context.Context, inner future.Future[T], opts ...Option) (T, time.Duration, error) {
	t, err := future.Await(ctx, Time(inner, opts...))
	if err != nil {
		var zero T
		return zero, 0, err
	}
	return t.Value, t.Elapsed, nil
}

// TryMeasure is Measure for fallible futures. On inner failure it returns the
// inner error unchanged and a zero duration.
func TryMeasure[T any](
	ctx context.Context,
	inner future.Future[future.Result[T]],
	opts ...Option,
) (T, time.Duration, error) {
	res, err := future.Await(ctx, TryTime(inner, opts...))
	if err != nil {
		var zero T
		return zero, 0, err
	}
	if res.Err != nil {
		var zero T
		return zero, 0, res.Err
	}
	return res.Value.Value, res.Value.Elapsed, nil
}
