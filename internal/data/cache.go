package data

import (
	"os"
	"sync"
	"time"

	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/model"
)

type cacheEntry struct {
	records []model.MarketRecord
	modTime time.Time
}

// TableCache keeps one loaded reference table per dataset path. It belongs to
// the serving layer (API, CLI); the loader itself never memoizes. Entries are
// invalidated when the file's modification time changes, so replacing the
// dataset on disk takes effect without a restart.
//
// Safe for concurrent use. A nil *TableCache is valid and always loads fresh.
type TableCache struct {
	mu    sync.RWMutex
	store map[string]*cacheEntry
}

func NewTableCache() *TableCache {
	return &TableCache{store: make(map[string]*cacheEntry)}
}

// Get returns the records for path, loading them on first use or when the
// file has changed since they were cached.
func (c *TableCache) Get(path string) ([]model.MarketRecord, error) {
	if c == nil {
		return Load(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	entry, ok := c.store[path]
	c.mu.RUnlock()
	if ok && entry.modTime.Equal(info.ModTime()) {
		return entry.records, nil
	}

	records, err := Load(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.store[path] = &cacheEntry{records: records, modTime: info.ModTime()}
	c.mu.Unlock()

	return records, nil
}

// Clear removes all entries.
func (c *TableCache) Clear() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string]*cacheEntry)
}
