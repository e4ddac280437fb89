package wallet

import (
	"sync"

	"walletfeed/internal/domain"
)

// Service aggregates the reconciler, the live feed and the account-query
// fallback into one consumable surface for the HTTP layer.
type Service struct {
	reconciler *Reconciler
	feed       *Feed

	mu            sync.RWMutex
	queryBalances map[domain.WalletCurrency]int64
	primary       domain.WalletCurrency
}

func NewService(reconciler *Reconciler, feed *Feed, primary domain.WalletCurrency) *Service {
	if primary != domain.CurrencyBTC && primary != domain.CurrencyUSD {
		primary = domain.CurrencyUSD
	}
	return &Service{
		reconciler:    reconciler,
		feed:          feed,
		queryBalances: make(map[domain.WalletCurrency]int64),
		primary:       primary,
	}
}

// ApplyAccountSummary ingests a fresh account-query result: fallback balances
// and, when present, the bootstrap price for the reconciler.
func (s *Service) ApplyAccountSummary(summary domain.AccountSummary) {
	s.mu.Lock()
	for currency, balance := range summary.Balances {
		s.queryBalances[currency] = balance
	}
	s.mu.Unlock()

	if summary.InitialPrice != 0 {
		s.reconciler.SetBootstrapPrice(summary.InitialPrice)
	}
}

func (s *Service) PrimaryCurrency() domain.WalletCurrency {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.primary
}

func (s *Service) SetPrimaryCurrency(c domain.WalletCurrency) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.primary = c
}

func (s *Service) CurrentPrice() float64 {
	return s.reconciler.CurrentPrice()
}

// Convert runs the integer payment-amount conversion at the current price.
func (s *Service) Convert(pa domain.PaymentAmount, to domain.WalletCurrency) domain.PaymentAmount {
	return ConvertPaymentAmount(s.reconciler.CurrentPrice(), pa, to)
}

// ConvertToPrimary converts into whichever currency the session prefers.
func (s *Service) ConvertToPrimary(pa domain.PaymentAmount) domain.PaymentAmount {
	return s.Convert(pa, s.PrimaryCurrency())
}

// Snapshot resolves balances (subscription shadows query) and packages the
// price readouts with the last-seen event of each kind.
func (s *Service) Snapshot() View {
	price := s.reconciler.CurrentPrice()

	s.mu.RLock()
	query := make(map[domain.WalletCurrency]int64, len(s.queryBalances))
	for c, b := range s.queryBalances {
		query[c] = b
	}
	s.mu.RUnlock()

	view := View{
		Price:           price,
		UsdPerBtc:       UsdPerBtc(price),
		UsdPerSat:       UsdPerSat(price),
		Balances:        ResolveBalances(s.feed.SubscriptionBalances(), query),
		PrimaryCurrency: s.PrimaryCurrency(),
	}

	if upd, ok := s.feed.LastEvent(domain.KindLn); ok {
		view.LnUpdate = upd.Ln
	}
	if upd, ok := s.feed.LastEvent(domain.KindOnChain); ok {
		view.OnChainUpdate = upd.OnChain
	}
	if upd, ok := s.feed.LastEvent(domain.KindIntraLedger); ok {
		view.IntraLedgerUpdate = upd.IntraLedger
	}
	return view
}
