package lock

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestWithDelay(t *testing.T) {
	ctx := context.Background()
	t.Run(`runs the code and returns its error`, func(t *testing.T) {
		success, err := WithDelay(ctx, "k1", time.Second, func() error {
			return errors.New("boom")
		})
		require.True(t, success)
		require.EqualError(t, err, "boom")
	})
	t.Run(`busy key times out`, func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _ = WithDelay(ctx, "k2", time.Second, func() error {
				close(started)
				<-release
				return nil
			})
		}()
		<-started
		success, err := WithDelay(ctx, "k2", 100*time.Millisecond, func() error {
			return nil
		})
		require.False(t, success)
		require.Nil(t, err)
		close(release)
		<-done

		success, err = WithDelay(ctx, "k2", time.Second, func() error { return nil })
		require.True(t, success)
		require.Nil(t, err)
	})
	t.Run(`waiter takes the key on release`, func(t *testing.T) {
		started := make(chan struct{})
		go func() {
			_, _ = WithDelay(ctx, "k3", time.Second, func() error {
				close(started)
				time.Sleep(20 * time.Millisecond)
				return nil
			})
		}()
		<-started
		success, err := WithDelay(ctx, "k3", time.Second, func() error { return nil })
		require.True(t, success)
		require.Nil(t, err)
	})
	t.Run(`cancelled context`, func(t *testing.T) {
		require.True(t, acquire(ctx, "k4", time.Second))
		defer release("k4")
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		success, err := WithDelay(cancelled, "k4", time.Second, func() error { return nil })
		require.False(t, success)
		require.Nil(t, err)
	})
}

func TestLimiter(t *testing.T) {
	limiter := NewLimiter(1)
	require.True(t, limiter.Acquire(context.Background()))
	require.Equal(t, 1, limiter.InUse())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.False(t, limiter.Acquire(ctx))

	limiter.Release()
	require.Equal(t, 0, limiter.InUse())
	require.True(t, limiter.Acquire(context.Background()))
	limiter.Release()
}
