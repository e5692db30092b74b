package memory

import (
	"sync"

	"github.com/custodia-labs/unitconv/internal/core/ports/driven"
)

// Ensure FactorCache implements the interface.
var _ driven.FactorCache = (*FactorCache)(nil)

// factorKey identifies a cached conversion by its raw expressions.
type factorKey struct {
	source string
	target string
}

// FactorCache is an in-memory implementation of driven.FactorCache.
// When capacity is reached the cache is reset rather than evicting per entry.
type FactorCache struct {
	mu       sync.RWMutex
	factors  map[factorKey]float64
	capacity int
}

// DefaultFactorCacheCapacity bounds the cache when no capacity is given.
const DefaultFactorCacheCapacity = 4096

// NewFactorCache creates a cache holding at most capacity entries.
// A non-positive capacity uses DefaultFactorCacheCapacity.
func NewFactorCache(capacity int) *FactorCache {
	if capacity <= 0 {
		capacity = DefaultFactorCacheCapacity
	}
	return &FactorCache{
		factors:  make(map[factorKey]float64),
		capacity: capacity,
	}
}

// Get returns the cached factor and whether it was present.
func (c *FactorCache) Get(source, target string) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	f, ok := c.factors[factorKey{source, target}]
	return f, ok
}

// Put stores a factor.
func (c *FactorCache) Put(source, target string, factor float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := factorKey{source, target}
	if _, ok := c.factors[key]; !ok && len(c.factors) >= c.capacity {
		c.factors = make(map[factorKey]float64)
	}
	c.factors[key] = factor
}

// Len returns the number of cached entries.
func (c *FactorCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.factors)
}

// Clear removes every entry.
func (c *FactorCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.factors = make(map[factorKey]float64)
}
