// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"dairy/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// LockClient backs the per-cell adjust lock. It stays nil when Redis is not
// configured or unreachable.
var LockClient *redis.Client

// InitRedis connects the lock client. Failure is logged, not fatal: the
// service falls back to in-process locking.
func InitRedis() {
	if config.AppConfig.RedisAddr == "" {
		return
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisLockDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		GetLogger().Warn("Redis unavailable, using in-process cell locks", zap.Error(err))
		_ = client.Close()
		return
	}
	LockClient = client
}

// GetLockClient returns the Redis lock client, or nil.
func GetLockClient() *redis.Client {
	return LockClient
}
