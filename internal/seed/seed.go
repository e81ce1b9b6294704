package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"kaikari-xpress/internal/domain"
)

func paise(v int64) *int64 { return &v }

// Products is the built-in grocery catalog. The postgres driver seeds it
// into the products table; the sqlite and memory drivers serve it directly.
func Products() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Fresh Tomato", Weight: "500g", PricePaise: 1800, OldPricePaise: paise(2500), Category: "veggies", Image: "https://images.unsplash.com/photo-1592924357228-91a4daadcfea?w=400"},
		{ID: 2, Name: "Red Onion", Weight: "1kg", PricePaise: 3500, OldPricePaise: paise(5000), Category: "veggies", Image: "https://images.unsplash.com/photo-1618512496248-a07fe83aa8cb?w=400"},
		{ID: 3, Name: "Potato", Weight: "1kg", PricePaise: 2800, OldPricePaise: paise(3500), Category: "veggies", Image: "https://images.unsplash.com/photo-1518977676601-b53f82aba655?w=400"},
		{ID: 4, Name: "Amul Milk", Weight: "500ml", PricePaise: 2700, OldPricePaise: paise(2700), Category: "dairy", Image: "https://images.unsplash.com/photo-1635436322965-482e383042ce?w=400"},
		{ID: 5, Name: "Banana Robusta", Weight: "6 pcs", PricePaise: 4000, OldPricePaise: paise(5500), Category: "fruits", Image: "https://images.unsplash.com/photo-1571771896328-7963057c1502?w=400"},
		{ID: 6, Name: "Coca Cola", Weight: "750ml", PricePaise: 4500, OldPricePaise: paise(5000), Category: "drinks", Image: "https://images.unsplash.com/photo-1622483767028-3f66f32aef97?w=400"},
		{ID: 7, Name: "Lays Chips", Weight: "50g", PricePaise: 2000, OldPricePaise: paise(2000), Category: "snacks", Image: "https://images.unsplash.com/photo-1566478949035-00c679a9e1f0?w=400"},
	}
}

// Apply inserts the built-in catalog. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	for _, p := range Products() {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %d: %w", p.ID, err)
		}
	}
	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p domain.Product) error {
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
`
	_, err := pool.Exec(ctx, q, p.ID, p.Name, p.Weight, p.PricePaise, p.OldPricePaise, p.Category, p.Image)
	return err
}
