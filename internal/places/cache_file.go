// internal/places/cache_file.go
package places

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	apperrors "dental-site/internal/common/errors"
	"dental-site/internal/common/logger"
	"dental-site/internal/common/metrics"
	"dental-site/internal/models"
)

const backendFile = "file"

// FileCache keeps the raw upstream result as JSON in one file. The file's
// modification time is the fetch time.
type FileCache struct {
	path   string
	now    Clock
	logger logger.Logger
}

func NewFileCache(path string, log logger.Logger) *FileCache {
	return &FileCache{
		path:   path,
		now:    time.Now,
		logger: log.WithFields(map[string]interface{}{"cache": backendFile, "path": path}),
	}
}

// WithClock replaces the clock used to stamp writes.
func (c *FileCache) WithClock(now Clock) *FileCache {
	c.now = now
	return c
}

func (c *FileCache) Read(_ context.Context) *models.CacheEntry {
	info, err := os.Stat(c.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.warnRead(err)
		}
		return nil
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		c.warnRead(err)
		return nil
	}

	var record *models.PlaceRecord
	if err := json.Unmarshal(bytes.TrimSpace(data), &record); err != nil {
		c.warnRead(fmt.Errorf("decode: %w", err))
		return nil
	}
	if record == nil {
		c.warnRead(errors.New("cache file holds null"))
		return nil
	}

	return &models.CacheEntry{Record: record, FetchedAt: info.ModTime()}
}

// Write goes through a temp file and a rename so readers never observe a
// half-written slot.
func (c *FileCache) Write(_ context.Context, record *models.PlaceRecord) error {
	if err := c.write(record); err != nil {
		metrics.PlaceCacheWrites.WithLabelValues(backendFile, "error").Inc()
		return apperrors.NewCacheWriteFailedError(backendFile, err)
	}
	metrics.PlaceCacheWrites.WithLabelValues(backendFile, "ok").Inc()
	return nil
}

func (c *FileCache) write(record *models.PlaceRecord) error {
	if record == nil {
		return errors.New("refusing to cache a nil record")
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".place_cache-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	stamp := c.now()
	if err := os.Chtimes(tmpName, stamp, stamp); err != nil {
		return fmt.Errorf("stamp temp file: %w", err)
	}
	if err := os.Rename(tmpName, c.path); err != nil {
		return fmt.Errorf("replace cache file: %w", err)
	}
	return nil
}

func (c *FileCache) warnRead(err error) {
	stdErr := apperrors.NewCacheReadFailedError(backendFile, err)
	c.logger.Warn("place cache unreadable, treating as empty", map[string]interface{}{
		"errorCode": string(stdErr.Code),
		"details":   stdErr.Details,
	})
}
