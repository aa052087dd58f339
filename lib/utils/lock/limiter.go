package lock

import (
	"context"
	"sync/atomic"
)

// Limiter bounds the number of concurrent holders, e.g. calls to a remote model.
type Limiter struct {
	slots     chan struct{}
	waitCount int32
}

func NewLimiter(size int) *Limiter {
	if size <= 0 {
		size = 1
	}
	return &Limiter{slots: make(chan struct{}, size)}
}

// Acquire blocks until a slot is free. Returns false when ctx ends first.
func (l *Limiter) Acquire(ctx context.Context) bool {
	atomic.AddInt32(&l.waitCount, 1)
	defer atomic.AddInt32(&l.waitCount, -1)
	select {
	case l.slots <- struct{}{}:
		return true
	case <-ctx.Done():
		return false
	}
}

func (l *Limiter) Release() {
	select {
	case <-l.slots:
	default:
	}
}

// WaitCount is the number of callers blocked in Acquire.
func (l *Limiter) WaitCount() int {
	return int(atomic.LoadInt32(&l.waitCount))
}

// InUse is the number of taken slots.
func (l *Limiter) InUse() int {
	return len(l.slots)
}
