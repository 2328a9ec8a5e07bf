package exchange

import (
	"sync"
	"time"

	"currency-wallet/internal/core/domain"
)

// rateCache is a bounded TTL cache for exchange rates. Entries expire
// passively; when full, the oldest insertion is evicted. Failures are
// never cached. Shared across requests, guarded by a mutex.
type rateCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	max     int
	entries map[domain.Currency]cacheEntry
	order   []domain.Currency

	now func() time.Time // injectable clock for tests
}

type cacheEntry struct {
	rate     float64
	storedAt time.Time
}

func newRateCache(ttl time.Duration, max int) *rateCache {
	return &rateCache{
		ttl:     ttl,
		max:     max,
		entries: make(map[domain.Currency]cacheEntry, max),
		now:     time.Now,
	}
}

// get returns a cached rate if present and unexpired.
func (c *rateCache) get(code domain.Currency) (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[code]
	if !ok {
		return 0, false
	}
	if c.now().Sub(entry.storedAt) >= c.ttl {
		return 0, false
	}
	return entry.rate, true
}

// put stores a rate, evicting the oldest insertion when at capacity.
func (c *rateCache) put(code domain.Currency, rate float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[code]; !exists {
		if len(c.entries) >= c.max && len(c.order) > 0 {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, code)
	}
	c.entries[code] = cacheEntry{rate: rate, storedAt: c.now()}
}
