// Package cache holds query results between mutations. Entries are keyed by
// entity type and invalidated synchronously by the mutation that makes them
// stale; there is no time-to-live.
package cache

import "sync"

// Key identifies a cached read: entity type plus an optional filter suffix.
type Key string

const (
	KeyUsers       Key = "users"
	KeyProducts    Key = "products"
	KeyLowStock    Key = "products/low-stock"
	KeySuppliers   Key = "suppliers"
	KeyClients     Key = "clients"
	KeyRecentSales Key = "sales/recent"
	KeyKPIs        Key = "kpis"
)

type Cache struct {
	mu      sync.RWMutex
	entries map[Key]any
}

func New() *Cache {
	return &Cache{entries: make(map[Key]any)}
}

// Get returns the entry for key typed as T. A type mismatch counts as a miss.
func Get[T any](c *Cache, key Key) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.entries[key]
	if !ok {
		var zero T
		return zero, false
	}
	typed, ok := v.(T)
	return typed, ok
}

// Put stores a value under key, replacing any previous entry.
func Put[T any](c *Cache, key Key, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Invalidate drops the given keys. Mutations call this before returning so
// the next read observes the write.
func (c *Cache) Invalidate(keys ...Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
	}
}
