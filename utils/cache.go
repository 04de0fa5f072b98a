// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"tripdesk/config"
)

// DatasetCacheClient is the Redis client used to cache primary catalog
// fetches. It stays nil when REDIS_ADDR is not configured; callers treat a
// nil client as "caching disabled".
var DatasetCacheClient *redis.Client

// InitDatasetCache initializes the Redis dataset cache client. A missing or
// unreachable Redis is not fatal: the catalog works without the cache.
func InitDatasetCache() {
	if config.AppConfig.RedisAddr == "" {
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		GetLogger().Warn("Dataset cache unavailable, continuing without it", zap.Error(err))
		return
	}
	DatasetCacheClient = client
}

// GetDatasetCacheClient returns the dataset cache client, which may be nil.
func GetDatasetCacheClient() *redis.Client {
	return DatasetCacheClient
}
