package wallet

import (
	"context"
	"fmt"

	"walletfeed/internal/adapters"

	"github.com/sirupsen/logrus"
)

// RefreshAccount runs one pass of the periodic account query and feeds the
// result into the service: fallback balances plus the bootstrap price. A
// failed pass is "no data this cycle" — the next pass retries, nothing is
// surfaced to the readout layer.
func RefreshAccount(ctx context.Context, execID string, client adapters.AccountClient, svc *Service) error {
	summary, err := client.GetAccountSummary(ctx)
	if err != nil {
		return fmt.Errorf("failed to query account summary: %w", err)
	}

	svc.ApplyAccountSummary(summary)

	logrus.Infof("Account refreshed: %d wallet balance(s), initial price %.2f; execID: %s",
		len(summary.Balances), summary.InitialPrice, execID)
	return nil
}
