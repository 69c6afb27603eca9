package flow

import "fmt"

// Policy selects how Parallel and Map report task errors
type Policy int

const (
	// FailFast reports the first observed error as soon as it is seen.
	// Tasks still in flight keep running, and their outcomes are dropped.
	FailFast Policy = iota

	// FailAfterSettle waits for every task to call back, then reports the
	// first error in completion order.
	FailAfterSettle
)

func (p Policy) String() string {
	switch p {
	case FailFast:
		return "FailFast"
	case FailAfterSettle:
		return "FailAfterSettle"
	default:
		return fmt.Sprintf("invalid Policy: %d", p)
	}
}

// Option configures a single Serial, Parallel or Map call
type Option func(*config)

type config struct {
	policy       Policy
	panicToError bool
	observer     Observer
}

func newConfig(opts []Option) config {
	cfg := config{
		policy:       FailFast,
		panicToError: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// validate checks the options that Parallel and Map depend on
func (c config) validate() error {
	switch c.policy {
	case FailFast, FailAfterSettle:
		return nil
	default:
		return fmt.Errorf("flow: %v", c.policy)
	}
}

// WithPolicy sets the error policy of Parallel and Map. Serial always stops
// at the first error and ignores it.
//
// Parallel and Map report an invalid policy to their final callback.
func WithPolicy(p Policy) Option {
	return func(c *config) {
		c.policy = p
	}
}

// WithPanicToError controls whether a task panicking during its invocation
// is settled as ErrPanic (the default) or left to crash the program.
func WithPanicToError(enabled bool) Option {
	return func(c *config) {
		c.panicToError = enabled
	}
}

// WithObserver installs a hook receiving lifecycle events of the call
func WithObserver(o Observer) Option {
	return func(c *config) {
		c.observer = o
	}
}
