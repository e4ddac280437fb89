package stream

import (
	"encoding/json"
	"fmt"
	"time"

	"walletfeed/internal/domain"

	"github.com/sirupsen/logrus"
)

type myUpdatesPayload struct {
	Data struct {
		MyUpdates struct {
			Errors []struct {
				Message string `json:"message"`
			} `json:"errors"`
			Me *struct {
				DefaultAccount struct {
					Wallets []struct {
						ID             string `json:"id"`
						WalletCurrency string `json:"walletCurrency"`
						Balance        int64  `json:"balance"`
					} `json:"wallets"`
				} `json:"defaultAccount"`
			} `json:"me"`
			Update json.RawMessage `json:"update"`
		} `json:"myUpdates"`
	} `json:"data"`
}

type rawUpdate struct {
	Type               string  `json:"type"`
	Base               int64   `json:"base"`
	Offset             int     `json:"offset"`
	CurrencyUnit       string  `json:"currencyUnit"`
	PaymentHash        string  `json:"paymentHash"`
	Status             string  `json:"status"`
	TxNotificationType string  `json:"txNotificationType"`
	TxHash             string  `json:"txHash"`
	Amount             int64   `json:"amount"`
	UsdPerSat          float64 `json:"usdPerSat"`
}

// decodeMyUpdates turns one "next" payload into a domain event. A payload may
// carry a wallet snapshot without an update (Kind stays empty), an update
// without wallets, or both. An unrecognized update type is skipped, not an
// error: the wallet snapshot riding the same payload still applies.
func decodeMyUpdates(payload []byte, now time.Time) (domain.SubscriptionUpdate, error) {
	var body myUpdatesPayload
	if err := json.Unmarshal(payload, &body); err != nil {
		return domain.SubscriptionUpdate{}, fmt.Errorf("failed to decode myUpdates payload: %w", err)
	}

	if len(body.Data.MyUpdates.Errors) > 0 {
		return domain.SubscriptionUpdate{}, fmt.Errorf("myUpdates returned error: %s", body.Data.MyUpdates.Errors[0].Message)
	}

	upd := domain.SubscriptionUpdate{ReceivedAt: now}

	if body.Data.MyUpdates.Me != nil {
		for _, w := range body.Data.MyUpdates.Me.DefaultAccount.Wallets {
			currency, ok := domain.ParseWalletCurrency(w.WalletCurrency)
			if !ok {
				continue
			}
			upd.Wallets = append(upd.Wallets, domain.WalletSnapshot{ID: w.ID, Currency: currency, Balance: w.Balance})
		}
	}

	if len(body.Data.MyUpdates.Update) == 0 || string(body.Data.MyUpdates.Update) == "null" {
		return upd, nil
	}

	var raw rawUpdate
	if err := json.Unmarshal(body.Data.MyUpdates.Update, &raw); err != nil {
		return domain.SubscriptionUpdate{}, fmt.Errorf("failed to decode myUpdates update: %w", err)
	}

	switch domain.UpdateKind(raw.Type) {
	case domain.KindPrice:
		upd.Kind = domain.KindPrice
		upd.Price = &domain.PriceUpdate{Base: raw.Base, Offset: raw.Offset, CurrencyUnit: raw.CurrencyUnit}
	case domain.KindLn:
		upd.Kind = domain.KindLn
		upd.Ln = &domain.LnUpdate{PaymentHash: raw.PaymentHash, Status: raw.Status}
	case domain.KindOnChain:
		upd.Kind = domain.KindOnChain
		upd.OnChain = &domain.OnChainUpdate{
			TxNotificationType: raw.TxNotificationType,
			TxHash:             raw.TxHash,
			Amount:             raw.Amount,
			UsdPerSat:          raw.UsdPerSat,
		}
	case domain.KindIntraLedger:
		upd.Kind = domain.KindIntraLedger
		upd.IntraLedger = &domain.IntraLedgerUpdate{
			TxNotificationType: raw.TxNotificationType,
			Amount:             raw.Amount,
			UsdPerSat:          raw.UsdPerSat,
		}
	default:
		logrus.Warnf("Skipping unknown myUpdates update type %q", raw.Type)
	}

	return upd, nil
}
