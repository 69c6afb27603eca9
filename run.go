package flow

import (
	"context"
)

// Await starts an orchestration and blocks until it reports its Result or
// ctx is closed, whichever happens first.
//
// Closing ctx only stops the wait: tasks already dispatched keep running and
// their outcome is dropped. In that case Await returns ctx.Err().
//
// Example:
//
//	sum, err := flow.Await(ctx, func(done flow.Callback[int]) {
//		flow.Serial(flow.Chain[int]{
//			First: fetchBase,
//			Then:  []flow.Step[int]{addBonus, applyTax},
//		}, done)
//	})
func Await[T any](ctx context.Context, start func(done Callback[T])) (T, error) {
	ch := make(chan Result[T], 1)
	runTask(start, func(r Result[T]) {
		ch <- r
	}, false)

	select {
	case r := <-ch:
		return r.Get()
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
