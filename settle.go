package flow

import (
	"golang.org/x/sync/errgroup"
)

// joinAfterSettle runs tasks under FailAfterSettle. Every task is waited for;
// the reported error is the first one returned, in completion order.
func joinAfterSettle[T any](tasks []func(Callback[T]), done Callback[[]T], panicToError bool, r run) {
	var eg errgroup.Group
	results := make([]T, len(tasks))

	for i, task := range tasks {
		i, task := i, task
		eg.Go(func() error {
			res := call(task, panicToError)
			r.emit(TaskDone, i, res.Err())
			if !res.IsOk() {
				return res.Err()
			}
			results[i] = res.Value()
			return nil
		})
	}

	go func() {
		res := Ok(results)
		if err := eg.Wait(); err != nil {
			res = Err[[]T](err)
		}
		r.emit(Settled, -1, res.Err())
		finish(done, res)
	}()
}
