package flow

import (
	"sync"
)

// group joins the tasks of one Parallel or Map call under FailFast.
//
// The pending count starts at the number of tasks, so a task calling back
// synchronously can never observe a finished group while siblings are still
// being spawned.
type group[T any] struct {
	run          run
	done         Callback[[]T]
	panicToError bool

	mu      sync.Mutex
	pending int
	results []T
	closing bool
}

func newGroup[T any](n int, done Callback[[]T], panicToError bool, r run) *group[T] {
	return &group[T]{
		run:          r,
		done:         done,
		panicToError: panicToError,
		pending:      n,
		results:      make([]T, n),
	}
}

// spawn starts the task at position index in a new goroutine
func (g *group[T]) spawn(index int, task func(Callback[T])) {
	go g.runTask(index, task)
}

func (g *group[T]) runTask(index int, task func(Callback[T])) {
	res := call(task, g.panicToError)

	g.mu.Lock()
	if g.closing {
		// Already reported, the outcome is dropped
		g.mu.Unlock()
		return
	}
	g.run.emit(TaskDone, index, res.Err())
	if !res.IsOk() {
		g.closing = true
		g.mu.Unlock()
		g.exit(Err[[]T](res.Err()))
		return
	}
	g.results[index] = res.Value()
	g.pending--
	if g.pending > 0 {
		g.mu.Unlock()
		return
	}
	g.closing = true
	g.mu.Unlock()
	g.exit(Ok(g.results))
}

// exit is called exactly once, outside the lock
func (g *group[T]) exit(res Result[[]T]) {
	g.run.emit(Settled, -1, res.Err())
	finish(g.done, res)
}
