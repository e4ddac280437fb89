package wallet

import (
	"context"
	"sync"

	"walletfeed/internal/adapters"
	"walletfeed/internal/domain"
	"walletfeed/internal/metrics"

	"github.com/sirupsen/logrus"
)

// Feed holds the live subscription state: the last-seen event of each kind
// (last-write-wins, no history) and the wallet snapshot carried on payloads.
// Apply is the single "recompute on event" entry the transport invokes per
// delivered message; nothing here is tied to the delivery mechanism.
type Feed struct {
	reconciler *Reconciler
	journal    adapters.EventJournal

	mu          sync.RWMutex
	last        map[domain.UpdateKind]domain.SubscriptionUpdate
	subBalances map[domain.WalletCurrency]int64
}

// NewFeed builds a feed. journal may be nil, in which case last events live
// only in memory for the session.
func NewFeed(reconciler *Reconciler, journal adapters.EventJournal) *Feed {
	return &Feed{
		reconciler:  reconciler,
		journal:     journal,
		last:        make(map[domain.UpdateKind]domain.SubscriptionUpdate),
		subBalances: make(map[domain.WalletCurrency]int64),
	}
}

// Apply ingests one decoded subscription event. Price events are forwarded to
// the reconciler; every pass ends with a reconcile so a session whose first
// price event never arrived can still pick up the bootstrap value.
func (f *Feed) Apply(ctx context.Context, upd domain.SubscriptionUpdate) {
	f.mu.Lock()
	if upd.Kind != "" {
		f.last[upd.Kind] = upd
	}
	for _, w := range upd.Wallets {
		f.subBalances[w.Currency] = w.Balance
	}
	f.mu.Unlock()

	if upd.Kind == domain.KindPrice && upd.Price != nil {
		f.reconciler.UpdatePrice(upd.Price.Value())
		metrics.SetPrice(f.reconciler.CurrentPrice())
	}
	f.reconciler.Reconcile()

	if upd.Kind == "" {
		return
	}
	metrics.IncUpdate(string(upd.Kind))

	if f.journal != nil {
		if err := f.journal.SaveLast(ctx, upd); err != nil {
			logrus.WithError(err).WithField("kind", upd.Kind).Warn("Failed to journal subscription event")
		}
	}
}

// Restore reloads the last-seen events persisted by a previous session.
// Price events are deliberately not replayed into the reconciler: the price
// cache slot is the price's own persistence path.
func (f *Feed) Restore(ctx context.Context) error {
	if f.journal == nil {
		return nil
	}
	events, err := f.journal.LoadLast(ctx)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, upd := range events {
		if _, seen := f.last[upd.Kind]; !seen {
			f.last[upd.Kind] = upd
		}
	}
	return nil
}

// LastEvent returns the most recent event of the given kind, if any.
func (f *Feed) LastEvent(kind domain.UpdateKind) (domain.SubscriptionUpdate, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	upd, ok := f.last[kind]
	return upd, ok
}

// SubscriptionBalances returns a copy of the balances carried on the live feed.
func (f *Feed) SubscriptionBalances() map[domain.WalletCurrency]int64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	balances := make(map[domain.WalletCurrency]int64, len(f.subBalances))
	for c, b := range f.subBalances {
		balances[c] = b
	}
	return balances
}
