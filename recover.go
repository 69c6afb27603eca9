package flow

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sync/atomic"
)

// ErrNilTask is reported for a nil Task, Step or Mapper
var ErrNilTask = errors.New("flow: nil task")

// ErrPanic is the Result error of a Task, Step or Mapper that panicked while
// being invoked. Stack is captured at the panic location.
type ErrPanic struct {
	Value any
	Stack []byte
}

func (err ErrPanic) Error() string {
	return fmt.Sprintf("panic: %v", err.Value)
}

// Unwrap returns the error passed to panic, or nil if panic was called with
// something other than an error
func (err ErrPanic) Unwrap() error {
	if e, ok := err.Value.(error); ok {
		return e
	}
	return nil
}

// runTask invokes the task in the current goroutine. Only the first call of
// the callback passed to the task is forwarded to done. A panic during the
// invocation settles the task as ErrPanic unless it has already called back.
func runTask[T any](task func(Callback[T]), done Callback[T], panicToError bool) {
	var called atomic.Bool
	cb := func(r Result[T]) {
		if called.CompareAndSwap(false, true) {
			done(r)
		}
	}

	if task == nil {
		cb(Err[T](ErrNilTask))
		return
	}
	if panicToError {
		defer func() {
			if p := recover(); p != nil {
				cb(Err[T](ErrPanic{Value: p, Stack: debug.Stack()}))
			}
		}()
	}
	task(cb)
}

// call runs the task and blocks until it calls back
func call[T any](task func(Callback[T]), panicToError bool) Result[T] {
	ch := make(chan Result[T], 1)
	runTask(task, func(r Result[T]) {
		ch <- r
	}, panicToError)
	return <-ch
}
