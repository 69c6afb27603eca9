package flow

// Result is the outcome of a task or of a whole orchestration: either a value
// or an error, never both.
//
// The zero Result carries neither. It is what orchestrations over empty
// inputs report.
type Result[T any] struct {
	value    T
	err      error
	hasValue bool
}

// Ok returns a successful Result holding v
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, hasValue: true}
}

// Err returns a failed Result. Err(nil) is the same as the zero Result.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Value returns the value, or the zero T if the Result has none
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the error, or nil on success
func (r Result[T]) Err() error {
	return r.err
}

// IsOk reports whether the Result carries no error
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// HasValue reports whether the Result was created by Ok
func (r Result[T]) HasValue() bool {
	return r.hasValue
}

// Get returns the value and the error in the usual Go order
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Callback receives the Result of a task or an orchestration
type Callback[T any] func(Result[T])
