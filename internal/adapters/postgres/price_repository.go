package postgres

import (
	"context"
	"errors"
	"fmt"

	"walletfeed/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PriceRepository persists the single price slot. One row, overwritten in
// place; the slot is never deleted.
type PriceRepository struct {
	pool *pgxpool.Pool
}

func (r *PriceRepository) Load(ctx context.Context) (float64, error) {
	const q = `select value from wallet_price where id = 1;`

	var price float64
	if err := r.pool.QueryRow(ctx, q).Scan(&price); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrPriceNotFound
		}
		return 0, fmt.Errorf("failed to select persisted price: %w", err)
	}
	return price, nil
}

func (r *PriceRepository) Save(ctx context.Context, price float64) error {
	const q = `
		insert into wallet_price(id, value, updated_at) values (1, $1, now())
		on conflict (id) do update
		  set value = excluded.value, updated_at = now();
	`

	if _, err := r.pool.Exec(ctx, q, price); err != nil {
		return fmt.Errorf("failed to upsert persisted price: %w", err)
	}
	return nil
}

func NewPriceRepository(pool *pgxpool.Pool) *PriceRepository {
	return &PriceRepository{pool: pool}
}
