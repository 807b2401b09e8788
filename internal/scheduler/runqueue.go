package scheduler

import (
	"context"
	"errors"
	"sync"
)

// ErrRunQueueClosed is returned by RunQueue operations after Close.
var ErrRunQueueClosed = errors.New("run queue is closed")

// RunQueue is an unbounded FIFO shared by a set of workers.
//
// Enqueue never blocks, so it is safe to call from a waker running on a
// worker goroutine. Dequeue blocks until an item, Close or ctx cancellation.
type RunQueue[T any] struct {
	mu     sync.Mutex
	items  []T
	head   int
	closed bool

	// Notification channel for data (BUFFERED, NEVER CLOSED)
	notifyC chan struct{}

	// Notification channel for shutdown (CLOSED ON SHUTDOWN)
	closeC chan struct{}
}

// NewRunQueue creates an empty queue with room for capacity items before
// its first reallocation.
func NewRunQueue[T any](capacity int) *RunQueue[T] {
	return &RunQueue[T]{
		items:   make([]T, 0, max(capacity, 0)),
		notifyC: make(chan struct{}, 1),
		closeC:  make(chan struct{}),
	}
}

// Enqueue appends v and wakes one waiting consumer.
func (q *RunQueue[T]) Enqueue(v T) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrRunQueueClosed
	}
	q.items = append(q.items, v)
	q.mu.Unlock()

	q.signal()
	return nil
}

// Dequeue removes the oldest item, waiting for one if the queue is empty.
func (q *RunQueue[T]) Dequeue(ctx context.Context) (T, error) {
	var zero T
	for {
		v, ok, more, err := q.tryDequeue()
		if err != nil {
			return zero, err
		}
		if ok {
			// pass the baton so other consumers see the remaining items
			if more {
				q.signal()
			}
			return v, nil
		}

		select {
		case <-q.notifyC:
		case <-q.closeC:
			return zero, ErrRunQueueClosed
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
}

func (q *RunQueue[T]) tryDequeue() (v T, ok bool, more bool, err error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return v, false, false, ErrRunQueueClosed
	}
	if q.head == len(q.items) {
		return v, false, false, nil
	}

	var zero T
	v = q.items[q.head]
	q.items[q.head] = zero
	q.head++

	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return v, true, q.head < len(q.items), nil
}

func (q *RunQueue[T]) signal() {
	select {
	case q.notifyC <- struct{}{}:
	default:
	}
}

// Len returns the number of queued items.
func (q *RunQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}

// Close discards queued items and releases every blocked consumer.
// Calling Close more than once is a no-op.
func (q *RunQueue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	q.items = nil
	q.head = 0
	close(q.closeC)
}
