// Package classify memoizes category decisions per activity cache key so the
// classifier service is only consulted once per distinct activity.
package classify

import (
	"context"
	"log/slog"

	"github.com/alexanderramin/drift/internal/domain"
	"github.com/alexanderramin/drift/internal/intelligence"
)

// Store persists the full cache map across restarts.
type Store interface {
	Load() (map[string]domain.Category, error)
	Save(entries map[string]domain.Category) error
}

// Cache maps activity cache keys to categories. Entries are never evicted or
// expired; the map is written through to the store on every insert. The poll
// loop is the single caller, so no locking is needed.
type Cache struct {
	classifier intelligence.Classifier
	store      Store
	logger     *slog.Logger
	entries    map[string]domain.Category
}

// NewCache creates a cache seeded from the store. A missing or corrupt store
// starts the cache empty; corruption is logged, not fatal.
func NewCache(classifier intelligence.Classifier, store Store, logger *slog.Logger) *Cache {
	entries, err := store.Load()
	if err != nil {
		logger.Warn("category store unreadable, starting empty", "error", err)
	}
	return &Cache{
		classifier: classifier,
		store:      store,
		logger:     logger,
		entries:    entries,
	}
}

// Categorize returns the category for the given cache key, consulting the
// classifier only on a miss. Classifier failures fall back to CategoryOther,
// and the fallback is cached: a permanently failing activity is Other from
// then on, never retried.
func (c *Cache) Categorize(ctx context.Context, subject, cacheKey string) domain.Category {
	if cat, ok := c.entries[cacheKey]; ok {
		return cat
	}

	cat, err := c.classifier.Categorize(ctx, subject)
	if err != nil {
		c.logger.Warn("classification failed, falling back",
			"cache_key", cacheKey, "fallback", domain.CategoryOther, "error", err)
		cat = domain.CategoryOther
	}

	c.entries[cacheKey] = cat
	if err := c.store.Save(c.entries); err != nil {
		// In-memory state stays authoritative; the next successful
		// write recovers durability.
		c.logger.Warn("persisting category cache failed", "error", err)
	}
	return cat
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	return len(c.entries)
}
