package wallet

import (
	"sync"

	"walletfeed/internal/adapters"
)

// Reconciler owns the session's current BTC price. Three sources feed it,
// in precedence order at init time: the persisted cache slot, the bootstrap
// value from the account query, and the 0 "unknown" sentinel. After init the
// live subscription overwrites it through UpdatePrice.
type Reconciler struct {
	cache adapters.PriceCache

	mu          sync.Mutex
	price       float64
	bootstrap   float64
	initialized bool
}

func NewReconciler(cache adapters.PriceCache) *Reconciler {
	return &Reconciler{cache: cache}
}

// CurrentPrice returns the held price, running the init sequence on first use.
// 0 means the price is still unknown.
func (r *Reconciler) CurrentPrice() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureInitialized()
	return r.price
}

// UpdatePrice adopts a new price from the subscription feed. An exact-equal
// value is a full no-op so a chatty feed doesn't cause redundant cache writes.
func (r *Reconciler) UpdatePrice(newPrice float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureInitialized()
	if newPrice == r.price {
		return
	}
	r.cache.Set(newPrice)
	r.price = newPrice
}

// SetBootstrapPrice records the account query's initial price. It may arrive
// after first use, so a reconcile pass follows immediately.
func (r *Reconciler) SetBootstrapPrice(p float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bootstrap = p
	if !r.initialized || r.price == 0 {
		r.initLocked()
		r.initialized = true
	}
}

// Reconcile re-runs the init sequence while the price is still unknown. Called
// once per delivered event to recover from the first price event never arriving.
func (r *Reconciler) Reconcile() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.initialized || r.price == 0 {
		r.initLocked()
		r.initialized = true
	}
}

func (r *Reconciler) ensureInitialized() {
	if r.initialized {
		return
	}
	r.initLocked()
	r.initialized = true
}

// initLocked is the full precedence chain: cache hit wins, else the bootstrap
// value is adopted and written through (a fresh cache self-populates), else 0.
func (r *Reconciler) initLocked() {
	if p, ok := r.cache.Get(); ok {
		r.price = p
		return
	}
	if r.bootstrap != 0 {
		r.cache.Set(r.bootstrap)
		r.price = r.bootstrap
		return
	}
	r.price = 0
}
