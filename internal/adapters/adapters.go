package adapters

import (
	"context"

	"walletfeed/internal/domain"
)

// PriceCache is the single-slot "last known price" store the reconciler
// reads and writes through. Implementations must treat the slot as
// overwrite-only: values are never deleted.
type PriceCache interface {
	Get() (float64, bool)
	Set(price float64)
}

// PriceStore persists the price slot across process restarts.
type PriceStore interface {
	Load(ctx context.Context) (float64, error)
	Save(ctx context.Context, price float64) error
}

// EventJournal keeps the last-seen subscription event per kind.
type EventJournal interface {
	SaveLast(ctx context.Context, upd domain.SubscriptionUpdate) error
	LoadLast(ctx context.Context) ([]domain.SubscriptionUpdate, error)
}

// AccountClient runs the non-live account query against the wallet backend.
type AccountClient interface {
	GetAccountSummary(ctx context.Context) (domain.AccountSummary, error)
}
