// Package kv provides the blob store the storefront persists into: whole
// JSON values addressed by a fixed key, rewritten wholesale on each change.
package kv

import "context"

// Store is a minimal key-value contract. GetItem returns domain.ErrNotFound
// when the key has never been written (or was removed).
type Store interface {
	GetItem(ctx context.Context, key string) ([]byte, error)
	SetItem(ctx context.Context, key string, value []byte) error
	RemoveItem(ctx context.Context, key string) error
}
