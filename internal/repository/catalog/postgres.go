package catalog

import (
	"context"
	"errors"

	"kaikari-xpress/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const productColumns = `id, name, weight, price_paise, old_price_paise, category, image, created_at`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *postgresRepo) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE category = $1
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, q, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&p.ID,
		&p.Name,
		&p.Weight,
		&p.PricePaise,
		&p.OldPricePaise,
		&p.Category,
		&p.Image,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, product domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (id, name, weight, price_paise, old_price_paise, category, image)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
	name = EXCLUDED.name,
	weight = EXCLUDED.weight,
	price_paise = EXCLUDED.price_paise,
	old_price_paise = EXCLUDED.old_price_paise,
	category = EXCLUDED.category,
	image = EXCLUDED.image
RETURNING ` + productColumns + `
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q,
		product.ID,
		product.Name,
		product.Weight,
		product.PricePaise,
		product.OldPricePaise,
		product.Category,
		product.Image,
	).Scan(
		&p.ID,
		&p.Name,
		&p.Weight,
		&p.PricePaise,
		&p.OldPricePaise,
		&p.Category,
		&p.Image,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProducts(rows pgx.Rows) ([]domain.Product, error) {
	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Weight,
			&p.PricePaise,
			&p.OldPricePaise,
			&p.Category,
			&p.Image,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}
