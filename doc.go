// Package flow composes callback-style tasks.
//
// Three primitives are provided:
//
//   - Serial runs a Chain one task at a time, feeding each result into the
//     next step and stopping at the first error.
//   - Parallel runs a list of tasks concurrently and delivers their results in
//     input order.
//   - Map applies a Mapper to every element of a slice concurrently and
//     delivers the results in input order.
//
// A task reports its outcome by calling its Callback exactly once with a
// Result. Every entry point reports its own outcome the same way: the final
// callback is called exactly once, with Ok(value), Err(err) or, for an empty
// input, the zero Result.
//
// Entry points never block on tasks. Empty inputs are reported before the
// entry point returns; otherwise tasks run on their own goroutines. Use Await
// to block until an orchestration settles.
//
// Dispatched tasks are never cancelled. Under FailFast (the default) Parallel
// and Map report the first observed error immediately and drop whatever the
// remaining tasks produce later. Under FailAfterSettle they wait for every
// task and report the first error in completion order.
//
// A task that never calls its callback keeps the orchestration pending
// forever.
package flow
