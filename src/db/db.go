package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens the shared connection pool. The pool is constructed once at
// bootstrap and handed to the components that need it; nothing in this
// package holds a process-wide handle.
func Connect(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
