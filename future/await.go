package future

import "context"

// Await drives f to completion on the calling goroutine.
//
// Await polls f, parks until f's waker fires, and polls again until f is
// ready. If ctx is done first, Await abandons f and returns ctx.Err(); f is
// not polled again and, if it implements Abandoner, is told so.
func Await[T any](ctx context.Context, f Future[T]) (T, error) {
	wake := make(chan struct{}, 1)
	cx := NewContext(WakerFunc(func() {
		select {
		case wake <- struct{}{}:
		default:
		}
	}))

	for {
		if err := ctx.Err(); err != nil {
			Abandon(f)
			var zero T
			return zero, err
		}

		if v, ok := f.Poll(cx).Value(); ok {
			return v, nil
		}

		select {
		case <-wake:
		case <-ctx.Done():
			Abandon(f)
			var zero T
			return zero, ctx.Err()
		}
	}
}
