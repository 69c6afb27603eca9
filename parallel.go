package flow

// Parallel runs all tasks concurrently, each on its own goroutine.
//
// When every task succeeds, done receives Ok with the task values in the
// order of tasks, whatever the order of completion. If a task fails, done
// receives its error as chosen by the Policy (FailFast by default) and no
// values. An empty list is reported to done with the zero Result before
// Parallel returns.
func Parallel[T any](tasks []Task[T], done Callback[[]T], opts ...Option) {
	fns := make([]func(Callback[T]), len(tasks))
	for i, task := range tasks {
		fns[i] = task
	}
	fanOut("parallel", fns, done, newConfig(opts))
}

// Map calls mapper once for every element of values, concurrently.
//
// When every call succeeds, done receives Ok with a slice whose element i is
// the value produced for values[i]. Errors are reported as by Parallel. An
// empty values slice is reported to done with the zero Result before Map
// returns, and mapper is never called.
func Map[In, Out any](values []In, mapper Mapper[In, Out], done Callback[[]Out], opts ...Option) {
	fns := make([]func(Callback[Out]), len(values))
	for i, v := range values {
		fns[i] = apply(mapper, v)
	}
	fanOut("map", fns, done, newConfig(opts))
}

func apply[In, Out any](mapper Mapper[In, Out], in In) func(Callback[Out]) {
	if mapper == nil {
		return nil
	}
	return func(done Callback[Out]) {
		mapper(in, done)
	}
}

func fanOut[T any](op string, tasks []func(Callback[T]), done Callback[[]T], cfg config) {
	r := newRun(op, cfg)

	if err := cfg.validate(); err != nil {
		r.emit(Settled, -1, err)
		finish(done, Err[[]T](err))
		return
	}

	if len(tasks) == 0 {
		r.emit(Settled, -1, nil)
		finish(done, Result[[]T]{})
		return
	}

	r.emit(Started, -1, nil)
	switch cfg.policy {
	case FailAfterSettle:
		joinAfterSettle(tasks, done, cfg.panicToError, r)
	default:
		g := newGroup(len(tasks), done, cfg.panicToError, r)
		for i, task := range tasks {
			g.spawn(i, task)
		}
	}
}
