// Package history provides the bounded, most-recent-first record of
// issued keys. It is the in-memory adapter for the app.HistoryStore port;
// entries live only for the process lifetime, nothing is persisted.
package history

import (
	"sync"

	"github.com/124-hue/APIkeygenerator/internal/domain"
)

// DefaultCap is the number of entries kept when no cap is configured.
const DefaultCap = 5

// Cache is a fixed-capacity, most-recent-first list of history entries.
// It owns its entries exclusively and hands out copies. Safe for
// concurrent use.
type Cache struct {
	mu      sync.Mutex
	cap     int
	entries []domain.HistoryEntry
}

// New returns a Cache bounded at limit entries. A limit below 1 falls
// back to DefaultCap.
func New(limit int) *Cache {
	if limit < 1 {
		limit = DefaultCap
	}
	return &Cache{cap: limit, entries: make([]domain.HistoryEntry, 0, limit)}
}

// Record prepends e; the oldest entry beyond the cap is dropped.
func (c *Cache) Record(e domain.HistoryEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) < c.cap {
		c.entries = append(c.entries, domain.HistoryEntry{})
	}
	copy(c.entries[1:], c.entries)
	c.entries[0] = e
}

// Entries returns a copy of the record, most recently recorded first.
func (c *Cache) Entries() []domain.HistoryEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.HistoryEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len reports the current number of entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
