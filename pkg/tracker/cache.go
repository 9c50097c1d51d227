package tracker

import (
	"github.com/FrancAlvenn/retention-tracker/pkg/tracker/models"
	"github.com/FrancAlvenn/retention-tracker/pkg/tracker/store"
)

// Cache memoizes one loaded workbook snapshot per path until
// invalidated. Load and Save stay cache-free and idempotent; the cache
// is owned by the caller, which decides when a refresh happens. The
// execution model is single-threaded, so no locking is needed here.
type Cache struct {
	path string
	wb   *models.Workbook
}

// NewCache creates an empty cache for the workbook at path.
func NewCache(path string) *Cache {
	return &Cache{path: path}
}

// Get returns the cached workbook, loading it on first use.
func (c *Cache) Get() (*models.Workbook, error) {
	if c.wb != nil {
		return c.wb, nil
	}
	wb, err := store.Load(c.path)
	if err != nil {
		return nil, err
	}
	c.wb = wb
	return wb, nil
}

// Invalidate drops the cached snapshot so the next Get reloads.
func (c *Cache) Invalidate() {
	c.wb = nil
}
