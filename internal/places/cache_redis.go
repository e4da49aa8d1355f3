// internal/places/cache_redis.go
package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	apperrors "dental-site/internal/common/errors"
	"dental-site/internal/common/logger"
	"dental-site/internal/common/metrics"
	"dental-site/internal/models"

	"github.com/redis/go-redis/v9"
)

const backendRedis = "redis"

// RedisCache keeps the entry under a single key with no expiry, so a failing
// upstream never blanks the last good record.
type RedisCache struct {
	client redis.Cmdable
	key    string
	now    Clock
	logger logger.Logger
}

func NewRedisCache(client redis.Cmdable, key string, log logger.Logger) *RedisCache {
	return &RedisCache{
		client: client,
		key:    key,
		now:    time.Now,
		logger: log.WithFields(map[string]interface{}{"cache": backendRedis, "key": key}),
	}
}

func (c *RedisCache) WithClock(now Clock) *RedisCache {
	c.now = now
	return c
}

func (c *RedisCache) Read(ctx context.Context) *models.CacheEntry {
	val, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.warnRead(err)
		}
		return nil
	}

	var entry models.CacheEntry
	if err := json.Unmarshal(val, &entry); err != nil {
		c.warnRead(fmt.Errorf("decode: %w", err))
		return nil
	}
	if entry.Record == nil {
		c.warnRead(errors.New("cached entry has no record"))
		return nil
	}
	return &entry
}

func (c *RedisCache) Write(ctx context.Context, record *models.PlaceRecord) error {
	if record == nil {
		return apperrors.NewCacheWriteFailedError(backendRedis, errors.New("refusing to cache a nil record"))
	}
	data, err := json.Marshal(models.CacheEntry{Record: record, FetchedAt: c.now().UTC()})
	if err != nil {
		return apperrors.NewCacheWriteFailedError(backendRedis, err)
	}
	if err := c.client.Set(ctx, c.key, data, 0).Err(); err != nil {
		metrics.PlaceCacheWrites.WithLabelValues(backendRedis, "error").Inc()
		return apperrors.NewCacheWriteFailedError(backendRedis, err)
	}
	metrics.PlaceCacheWrites.WithLabelValues(backendRedis, "ok").Inc()
	return nil
}

func (c *RedisCache) warnRead(err error) {
	stdErr := apperrors.NewCacheReadFailedError(backendRedis, err)
	c.logger.Warn("place cache unreadable, treating as empty", map[string]interface{}{
		"errorCode": string(stdErr.Code),
		"details":   stdErr.Details,
	})
}
