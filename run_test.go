package flow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAwaitValue(t *testing.T) {
	v, err := Await(context.Background(), func(done Callback[int]) {
		later(nil, Ok(42))(done)
	})
	require.NoError(t, err)
	require.Equal(t, 42, v)
}

func TestAwaitError(t *testing.T) {
	v, err := Await(context.Background(), func(done Callback[int]) {
		done(Err[int](errors.New("oops")))
	})
	require.EqualError(t, err, "oops")
	require.Zero(t, v)
}

func TestAwaitCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	gate := make(chan struct{})
	defer close(gate)

	seq := make(chan int)
	var err error
	go func() {
		_, err = Await(ctx, func(done Callback[int]) {
			later(gate, Ok(1))(done)
		})
		seq <- 1
	}()
	cancel()
	require.Equal(t, 1, <-seq)
	require.Equal(t, context.Canceled, err)
}

func TestAwaitNil(t *testing.T) {
	_, err := Await[int](context.Background(), nil)
	require.ErrorIs(t, err, ErrNilTask)
}
