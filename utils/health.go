package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Postgres  bool      `json:"postgres"`
	Cache     bool      `json:"cache"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory
// state. Either dependency may be nil when unconfigured; it is then simply
// reported as down.
func StartHealthMonitor(pool *pgxpool.Pool, cache *redis.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			pgHealthy := pool != nil && pool.Ping(ctx) == nil
			cacheHealthy := cache != nil && cache.Ping(ctx).Err() == nil

			healthMu.Lock()
			currentHealth = HealthStatus{
				Postgres:  pgHealthy,
				Cache:     cacheHealthy,
				CheckedAt: time.Now(),
			}
			healthMu.Unlock()
		}
	}()
}
