package executor

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/utkarsh5026/pollwatch/future"
)

// Task states. A task moves idle -> scheduled -> running and back to idle
// while pending, and ends in done.
const (
	stateIdle int32 = iota
	stateScheduled
	stateRunning
	stateNotified // woken while running; re-queue after the poll
	stateDone
)

// task is the type-erased unit the workers poll. It is its own waker.
type task struct {
	id    uuid.UUID
	rt    *Runtime
	state atomic.Int32
	cx    *future.Context

	// poll advances the underlying future and reports whether it completed.
	poll func(cx *future.Context) bool

	// fail ends the task with err. It is a no-op if the task already ended.
	fail func(err error)
}

func newTask(rt *Runtime, id uuid.UUID) *task {
	t := &task{id: id, rt: rt}
	t.cx = future.NewContext(t)
	return t
}

// Wake queues the task if it is idle, or flags it for another poll if a
// worker is polling it right now.
func (t *task) Wake() {
	for {
		switch t.state.Load() {
		case stateIdle:
			if t.state.CompareAndSwap(stateIdle, stateScheduled) {
				t.rt.schedule(t)
				return
			}
		case stateRunning:
			if t.state.CompareAndSwap(stateRunning, stateNotified) {
				return
			}
		default:
			return
		}
	}
}

// run performs one poll attempt on the calling worker.
func (t *task) run() {
	if !t.state.CompareAndSwap(stateScheduled, stateRunning) {
		return
	}

	done, err := t.pollWithRecovery()
	if err != nil {
		t.state.Store(stateDone)
		t.fail(err)
		t.rt.forget(t)
		return
	}
	if done {
		t.state.Store(stateDone)
		t.rt.forget(t)
		return
	}

	if t.state.CompareAndSwap(stateRunning, stateIdle) {
		return
	}

	debugLog("task %s woken while running, re-queueing", t.id)
	t.state.Store(stateScheduled)
	t.rt.schedule(t)
}

// pollWithRecovery polls the task, converting a panic into an error so a
// single task cannot take a worker down.
func (t *task) pollWithRecovery() (done bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			err = fmt.Errorf("task panic: %v\nstack trace:\n%s", r, buf[:n])
		}
	}()

	return t.poll(t.cx), nil
}
