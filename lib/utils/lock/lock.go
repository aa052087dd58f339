package lock

import (
	"context"
	"sync"
	"time"
)

var (
	mu   sync.Mutex
	held = map[string]chan struct{}{} // closed when the holder releases the key
)

// WithDelay runs safeCode while holding the in-process lock for key.
// success is false when the lock was not taken within wait or ctx ended first.
func WithDelay(ctx context.Context, key string, wait time.Duration, safeCode func() error) (success bool, err error) {
	if !acquire(ctx, key, wait) {
		return false, nil
	}
	defer release(key)
	return true, safeCode()
}

func acquire(ctx context.Context, key string, wait time.Duration) bool {
	timer := time.NewTimer(wait)
	defer timer.Stop()
	for {
		mu.Lock()
		released, busy := held[key]
		if !busy {
			held[key] = make(chan struct{})
			mu.Unlock()
			return true
		}
		mu.Unlock()
		select {
		case <-released:
		case <-timer.C:
			return false
		case <-ctx.Done():
			return false
		}
	}
}

func release(key string) {
	mu.Lock()
	released := held[key]
	delete(held, key)
	mu.Unlock()
	close(released)
}
