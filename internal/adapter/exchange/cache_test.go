package exchange

import (
	"testing"
	"time"

	"currency-wallet/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func newTestCache(ttl time.Duration, max int) (*rateCache, *time.Time) {
	c := newRateCache(ttl, max)
	now := time.Now()
	c.now = func() time.Time { return now }
	return c, &now
}

func TestRateCache_HitWithinTTL(t *testing.T) {
	c, _ := newTestCache(60*time.Second, 10)

	c.put(domain.CurrencyUSD, 4.05)

	rate, ok := c.get(domain.CurrencyUSD)
	assert.True(t, ok)
	assert.Equal(t, 4.05, rate)
}

func TestRateCache_Miss(t *testing.T) {
	c, _ := newTestCache(60*time.Second, 10)

	_, ok := c.get(domain.CurrencyJPY)
	assert.False(t, ok)
}

func TestRateCache_Expiry(t *testing.T) {
	c, now := newTestCache(60*time.Second, 10)

	c.put(domain.CurrencyUSD, 4.05)

	*now = now.Add(59 * time.Second)
	_, ok := c.get(domain.CurrencyUSD)
	assert.True(t, ok, "entry just under TTL is still served")

	*now = now.Add(2 * time.Second)
	_, ok = c.get(domain.CurrencyUSD)
	assert.False(t, ok, "entry past TTL is not served")
}

func TestRateCache_EvictsOldestInsertion(t *testing.T) {
	c, _ := newTestCache(60*time.Second, 2)

	c.put(domain.CurrencyJPY, 0.03)
	c.put(domain.CurrencyUSD, 4.05)
	c.put(domain.CurrencyEUR, 4.30) // evicts JPY

	_, ok := c.get(domain.CurrencyJPY)
	assert.False(t, ok)

	_, ok = c.get(domain.CurrencyUSD)
	assert.True(t, ok)
	_, ok = c.get(domain.CurrencyEUR)
	assert.True(t, ok)
}

func TestRateCache_PutRefreshesExisting(t *testing.T) {
	c, now := newTestCache(60*time.Second, 2)

	c.put(domain.CurrencyUSD, 4.05)
	*now = now.Add(50 * time.Second)
	c.put(domain.CurrencyUSD, 4.10)

	*now = now.Add(30 * time.Second)
	rate, ok := c.get(domain.CurrencyUSD)
	assert.True(t, ok, "refreshed entry restarts its TTL")
	assert.Equal(t, 4.10, rate)

	// Refreshing must not grow the insertion order bookkeeping.
	c.put(domain.CurrencyJPY, 0.03)
	c.put(domain.CurrencyEUR, 4.30)
	_, usdOK := c.get(domain.CurrencyUSD)
	assert.False(t, usdOK, "USD was the oldest insertion and is evicted")
}
