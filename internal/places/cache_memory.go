// internal/places/cache_memory.go
package places

import (
	"context"
	"errors"
	"sync"
	"time"

	apperrors "dental-site/internal/common/errors"
	"dental-site/internal/models"
)

// MemoryCache is a process-local slot.
type MemoryCache struct {
	mu    sync.RWMutex
	entry *models.CacheEntry
	now   Clock
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{now: time.Now}
}

func (c *MemoryCache) WithClock(now Clock) *MemoryCache {
	c.now = now
	return c
}

func (c *MemoryCache) Read(_ context.Context) *models.CacheEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.entry == nil {
		return nil
	}
	cp := *c.entry
	return &cp
}

func (c *MemoryCache) Write(_ context.Context, record *models.PlaceRecord) error {
	if record == nil {
		return apperrors.NewCacheWriteFailedError("memory", errors.New("refusing to cache a nil record"))
	}
	c.mu.Lock()
	c.entry = &models.CacheEntry{Record: record, FetchedAt: c.now()}
	c.mu.Unlock()
	return nil
}
