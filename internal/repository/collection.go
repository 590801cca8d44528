package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-retail-erp/pkg/kvstore"
)

// Storage keys. Each holds one JSON array.
const (
	KeyProducts     = "products"
	KeyCustomers    = "customers"
	KeySales        = "sales"
	KeyProductTypes = "productTypes"
	KeySuppliers    = "suppliers"
	KeyPlatforms    = "platforms"
)

// BackupKeys lists the keys bundled into an export, in export order.
var BackupKeys = []string{KeyProducts, KeyCustomers, KeySales, KeyProductTypes, KeySuppliers, KeyPlatforms}

var ErrNotFound = errors.New("record not found")

// collection is a whole-array JSON document under one key. Every save rewrites
// the complete array.
type collection[T any] struct {
	bucket kvstore.Bucket
	key    string
}

// load returns the stored array, or fallback (copied) when the key is absent.
func (c collection[T]) load(ctx context.Context, fallback []T) ([]T, error) {
	raw, ok, err := c.bucket.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.key, err)
	}
	if !ok {
		return append(make([]T, 0, len(fallback)), fallback...), nil
	}
	items := []T{}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.key, err)
	}
	if items == nil {
		// stored literal null
		items = []T{}
	}
	return items, nil
}

func (c collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.bucket.Set(ctx, c.key, string(data)); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	return nil
}
