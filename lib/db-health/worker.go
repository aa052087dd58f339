package dbhealthworker

import (
	"context"
	"sync"
	"time"

	"ats-backend/config"
	"ats-backend/db"
	baseworker "ats-backend/lib/utils/base-worker"

	"gorm.io/gorm"
)

// Status is the result of the last database ping.
type Status struct {
	Healthy   bool      `json:"healthy"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

var (
	mu     sync.RWMutex
	status Status
)

func StartWorker(ctx context.Context) {
	interval := time.Duration(config.Conf.Database.HealthCheckIntervalSec) * time.Second
	if interval <= 0 {
		interval = 30 * time.Second
	}
	i := &impl{
		BaseImpl: *baseworker.NewInstance("DBHealthWorker", time.Second, interval).WithJobTimeout(5 * time.Second),
		conn:     db.DB,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	conn *gorm.DB
}

func (i impl) handle(ctx context.Context) {
	current := Check(ctx, i.conn)
	if !current.Healthy {
		i.GetLogger().
			WithField("error", current.Error).
			Error("database ping failed")
		return
	}
	i.GetLogger().Debug("database ping ok")
}

// Check pings the database and stores the result as the current status.
func Check(ctx context.Context, conn *gorm.DB) Status {
	result := Status{Healthy: true, CheckedAt: time.Now()}
	if err := db.Ping(ctx, conn); err != nil {
		result.Healthy = false
		result.Error = err.Error()
	}
	mu.Lock()
	status = result
	mu.Unlock()
	return result
}

// Current returns the last stored status.
func Current() Status {
	mu.RLock()
	defer mu.RUnlock()
	return status
}
