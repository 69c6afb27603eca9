package flow

// A Task is a unit of asynchronous work that takes no input.
//
// The task must call done exactly once, from any goroutine, either before or
// after it returns. Calls after the first one are ignored.
type Task[T any] func(done Callback[T])

// A Step is a unit of asynchronous work that receives the value produced by
// the previous task of a Chain.
type Step[T any] func(in T, done Callback[T])

// A Mapper is applied by Map to one element of the input slice
type Mapper[In, Out any] func(in In, done Callback[Out])

// Chain is the ordered task list run by Serial. First receives no input, each
// of Then receives the value of its predecessor.
//
// The zero Chain is empty.
type Chain[T any] struct {
	First Task[T]
	Then  []Step[T]
}

// Len returns the number of tasks in the chain
func (c Chain[T]) Len() int {
	if c.First == nil && len(c.Then) == 0 {
		return 0
	}
	return 1 + len(c.Then)
}

// FromFunc adapts a synchronous function to a Task
func FromFunc[T any](fn func() (T, error)) Task[T] {
	return func(done Callback[T]) {
		done(fromPair(fn()))
	}
}

// StepFunc adapts a synchronous function to a Step
func StepFunc[T any](fn func(in T) (T, error)) Step[T] {
	return func(in T, done Callback[T]) {
		done(fromPair(fn(in)))
	}
}

// MapperFunc adapts a synchronous function to a Mapper
func MapperFunc[In, Out any](fn func(in In) (Out, error)) Mapper[In, Out] {
	return func(in In, done Callback[Out]) {
		done(fromPair(fn(in)))
	}
}

func fromPair[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}
