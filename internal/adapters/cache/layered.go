package cache

import (
	"context"
	"errors"
	"time"

	"walletfeed/internal/adapters"
	"walletfeed/internal/domain"

	"github.com/sirupsen/logrus"
)

const storeTimeout = 3 * time.Second

// LayeredPriceCache fronts the durable price store with the in-memory slot.
// Reads hit memory first and hydrate it from the store on a miss; writes go
// through to both. Store failures are "no data this cycle": logged, then the
// memory slot carries on alone.
type LayeredPriceCache struct {
	mem   adapters.PriceCache
	store adapters.PriceStore
}

func NewLayeredPriceCache(mem adapters.PriceCache, store adapters.PriceStore) *LayeredPriceCache {
	return &LayeredPriceCache{mem: mem, store: store}
}

func (c *LayeredPriceCache) Get() (float64, bool) {
	if price, ok := c.mem.Get(); ok {
		return price, true
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	price, err := c.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrPriceNotFound) {
			logrus.WithError(err).Warn("Failed to load persisted price")
		}
		return 0, false
	}
	c.mem.Set(price)
	return price, true
}

func (c *LayeredPriceCache) Set(price float64) {
	c.mem.Set(price)
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := c.store.Save(ctx, price); err != nil {
		logrus.WithError(err).Warn("Failed to persist price")
	}
}
