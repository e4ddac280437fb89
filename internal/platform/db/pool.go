package db

import (
	"context"

	"walletfeed/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CreatePoolAndPing opens a pgx pool from the db config and verifies the
// connection before handing it out. Pool sizing comes from the connection
// string (db_server.max_conns).
func CreatePoolAndPing(ctx context.Context, cfg config.DbServer) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.GetConnectionStr())
	if err != nil {
		return nil, err
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
