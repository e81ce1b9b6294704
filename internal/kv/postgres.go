package kv

import (
	"context"
	"errors"

	"kaikari-xpress/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgres returns a Store backed by the kv_records table.
func NewPostgres(pool *pgxpool.Pool) Store {
	return &postgresStore{pool: pool}
}

func (s *postgresStore) GetItem(ctx context.Context, key string) ([]byte, error) {
	const q = `
SELECT value
FROM kv_records
WHERE key = $1
`
	var value []byte
	if err := s.pool.QueryRow(ctx, q, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

func (s *postgresStore) SetItem(ctx context.Context, key string, value []byte) error {
	const q = `
INSERT INTO kv_records (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
`
	_, err := s.pool.Exec(ctx, q, key, value)
	return err
}

func (s *postgresStore) RemoveItem(ctx context.Context, key string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM kv_records WHERE key = $1`, key)
	return err
}
