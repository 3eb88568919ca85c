package config

import (
	"context"
	"os"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

// InitRedis connects to redis for the catalog cache. The cache is optional:
// a missing or unreachable redis returns nil and the app runs uncached.
func InitRedis(logger *logrus.Logger) *redis.Client {
	redisOnce.Do(func() {
		addr := os.Getenv("REDIS_ADD")
		if addr == "" {
			logger.Warn("REDIS_ADD not set, catalog cache disabled")
			return
		}

		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASS"),
			DB:       0,
		})

		if _, err := client.Ping(context.Background()).Result(); err != nil {
			logger.WithError(err).Warn("redis unreachable, catalog cache disabled")
			return
		}
		logger.Info("Connected to Redis")
		redisClient = client
	})
	return redisClient
}
