package flow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// wait runs start through Await and fails the test if it does not settle
func wait[T any](t *testing.T, start func(done Callback[T])) (T, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	v, err := Await(ctx, start)
	require.NotErrorIs(t, err, context.DeadlineExceeded)
	return v, err
}

// later returns a task calling back from another goroutine once gate closes.
// A nil gate does not block.
func later[T any](gate <-chan struct{}, res Result[T]) Task[T] {
	return func(done Callback[T]) {
		go func() {
			if gate != nil {
				<-gate
			}
			done(res)
		}()
	}
}

func panicWith(value any) {
	panic(value)
}
