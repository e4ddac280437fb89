package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"walletfeed/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EventRepository journals the last-seen subscription event per kind so a
// restarted session can re-expose the latest payment/tx notifications.
// One row per kind, last-write-wins.
type EventRepository struct {
	pool *pgxpool.Pool
}

func (r *EventRepository) SaveLast(ctx context.Context, upd domain.SubscriptionUpdate) error {
	payload, err := json.Marshal(upd)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", upd.Kind, err)
	}

	const q = `
		insert into wallet_events(kind, payload, updated_at) values ($1, $2, now())
		on conflict (kind) do update
		  set payload = excluded.payload, updated_at = now();
	`

	if _, err = r.pool.Exec(ctx, q, string(upd.Kind), payload); err != nil {
		return fmt.Errorf("failed to upsert %s event: %w", upd.Kind, err)
	}
	return nil
}

func (r *EventRepository) LoadLast(ctx context.Context) ([]domain.SubscriptionUpdate, error) {
	const q = `select payload from wallet_events;`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query journaled events: %w", err)
	}
	defer rows.Close()

	events := make([]domain.SubscriptionUpdate, 0, 4)
	for rows.Next() {
		var payload []byte
		if err = rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan journaled event: %w", err)
		}
		var upd domain.SubscriptionUpdate
		if err = json.Unmarshal(payload, &upd); err != nil {
			return nil, fmt.Errorf("failed to unmarshal journaled event: %w", err)
		}
		events = append(events, upd)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journaled events: %w", err)
	}
	return events, nil
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}
