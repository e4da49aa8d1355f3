// internal/places/cache.go
package places

import (
	"context"
	"time"

	"dental-site/internal/models"
)

// Cache is the single-slot store for the last successful place lookup.
//
// Read never fails: a missing, unreadable or corrupt slot reads as nil.
// Write replaces the whole slot with {record, fetchedAt: now}.
type Cache interface {
	Read(ctx context.Context) *models.CacheEntry
	Write(ctx context.Context, record *models.PlaceRecord) error
}

// Clock returns the current time; tests pin it.
type Clock func() time.Time
