package flow

// Serial runs the tasks of chain one after another. Each step of chain.Then
// receives the value produced by the task before it.
//
// If a task fails, done receives its error and no later task runs. Otherwise
// done receives Ok with the value of the last task. An empty chain is
// reported to done with the zero Result before Serial returns.
//
// The chain runs on a new goroutine, one task at a time: a task is not
// invoked before its predecessor has called back.
func Serial[T any](chain Chain[T], done Callback[T], opts ...Option) {
	cfg := newConfig(opts)
	r := newRun("serial", cfg)

	if chain.Len() == 0 {
		r.emit(Settled, -1, nil)
		finish(done, Result[T]{})
		return
	}

	r.emit(Started, -1, nil)
	go runChain(chain, done, cfg, r)
}

func runChain[T any](chain Chain[T], done Callback[T], cfg config, r run) {
	res := call(chain.First, cfg.panicToError)
	r.emit(TaskDone, 0, res.Err())

	for i, step := range chain.Then {
		if !res.IsOk() {
			break
		}
		res = call(bind(step, res.Value()), cfg.panicToError)
		r.emit(TaskDone, i+1, res.Err())
	}

	if res.IsOk() {
		// A step calling back with the zero Result still counts as a value
		res = Ok(res.Value())
	}
	r.emit(Settled, -1, res.Err())
	finish(done, res)
}

// bind fixes the input of a step, turning it into a task
func bind[T any](step Step[T], in T) Task[T] {
	if step == nil {
		return nil
	}
	return func(done Callback[T]) {
		step(in, done)
	}
}

func finish[T any](done Callback[T], res Result[T]) {
	if done != nil {
		done(res)
	}
}
