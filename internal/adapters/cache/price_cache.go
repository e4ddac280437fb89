package cache

import (
	"fmt"

	"github.com/dgraph-io/ristretto"
)

const priceKey = "price:last"

// RistrettoPriceCache is the in-session price slot: one process-wide key,
// overwritten on every accepted price, never deleted.
type RistrettoPriceCache struct {
	cache *ristretto.Cache
}

func NewPriceCache() (*RistrettoPriceCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 64,
		MaxCost:     8,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create price cache failed: %w", err)
	}
	return &RistrettoPriceCache{cache: c}, nil
}

func (c *RistrettoPriceCache) Get() (float64, bool) {
	if v, ok := c.cache.Get(priceKey); ok {
		price, ok := v.(float64)
		return price, ok
	}
	return 0, false
}

func (c *RistrettoPriceCache) Set(price float64) {
	c.cache.Set(priceKey, price, 1)
	// Single hot slot; wait so the reconciler's next read observes the write.
	c.cache.Wait()
}

func (c *RistrettoPriceCache) Close() { c.cache.Close() }
