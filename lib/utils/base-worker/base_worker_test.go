package baseworker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("panicking job keeps the schedule", func(t *testing.T) {
		var runs atomic.Int32
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		worker := NewInstance("test", time.Millisecond, 5*time.Millisecond)
		go func() {
			worker.Run(ctx, func(ctx context.Context) {
				if runs.Add(1) == 1 {
					panic("boom")
				}
			})
			close(done)
		}()
		require.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, time.Millisecond)
		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("worker did not stop")
		}
	})
	t.Run("job context is bounded", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		got := make(chan error, 1)
		worker := NewInstance("test", time.Millisecond, time.Hour).WithJobTimeout(10 * time.Millisecond)
		go worker.Run(ctx, func(ctx context.Context) {
			<-ctx.Done()
			got <- ctx.Err()
		})
		select {
		case err := <-got:
			require.ErrorIs(t, err, context.DeadlineExceeded)
		case <-time.After(time.Second):
			t.Fatal("job was not cancelled")
		}
	})
}
