package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	CacheKeyAllHotels      = "hotels:all"
	CacheKeyFeaturedHotels = "hotels:featured"

	cacheScanPattern = "hotels:*"
	cacheScanCount   = 100
	cacheTTL         = 10 * time.Minute
)

// CatalogCache is a redis-backed cache for the hotel catalog responses.
// A nil CatalogCache (or one built from a nil client) disables caching.
type CatalogCache struct {
	rdb    *redis.Client
	logger *logrus.Logger
}

func NewCatalogCache(rdb *redis.Client, logger *logrus.Logger) *CatalogCache {
	if rdb == nil {
		return nil
	}
	return &CatalogCache{rdb: rdb, logger: logger}
}

func (c *CatalogCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("redis GET failed")
		return nil, false
	}
	return data, true
}

func (c *CatalogCache) Set(ctx context.Context, key string, payload []byte) {
	if c == nil {
		return
	}
	if err := c.rdb.Set(ctx, key, payload, cacheTTL).Err(); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("redis SET failed")
	}
}

// Invalidate drops every cached catalog response. Called after any write to
// the hotels collection.
func (c *CatalogCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}

	var keys []string
	var cursor uint64
	for {
		currentKeys, next, err := c.rdb.Scan(ctx, cursor, cacheScanPattern, cacheScanCount).Result()
		if err != nil {
			c.logger.WithError(err).Warn("redis SCAN failed during cache invalidation")
			return
		}
		keys = append(keys, currentKeys...)
		cursor = next
		if cursor == 0 {
			break
		}
	}

	if len(keys) == 0 {
		return
	}

	pipe := c.rdb.Pipeline()
	for _, key := range keys {
		pipe.Del(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.WithError(err).Warn("redis pipeline DEL failed during cache invalidation")
		return
	}
	c.logger.WithField("keys", len(keys)).Debug("catalog cache invalidated")
}
