package repository

import (
	"context"
	"fmt"

	"go-retail-erp/internal/model"
	"go-retail-erp/pkg/kvstore"
)

type CatalogRepository interface {
	// FindAll returns the stored list for kind, or its defaults when nothing is stored.
	FindAll(ctx context.Context, kind model.CatalogKind) ([]string, error)
	SaveAll(ctx context.Context, kind model.CatalogKind, values []string) error
	WithTx(b kvstore.Bucket) CatalogRepository
}

type catalogRepo struct {
	bucket kvstore.Bucket
}

func NewCatalogRepo(b kvstore.Bucket) CatalogRepository {
	return &catalogRepo{bucket: b}
}

func (r *catalogRepo) WithTx(b kvstore.Bucket) CatalogRepository {
	return NewCatalogRepo(b)
}

// CatalogKey maps a catalog kind to its storage key.
func CatalogKey(kind model.CatalogKind) (string, error) {
	switch kind {
	case model.CatalogProductType:
		return KeyProductTypes, nil
	case model.CatalogSupplier:
		return KeySuppliers, nil
	case model.CatalogPlatform:
		return KeyPlatforms, nil
	}
	return "", fmt.Errorf("unknown catalog kind %q", kind)
}

func (r *catalogRepo) collection(kind model.CatalogKind) (collection[string], error) {
	key, err := CatalogKey(kind)
	if err != nil {
		return collection[string]{}, err
	}
	return collection[string]{bucket: r.bucket, key: key}, nil
}

func (r *catalogRepo) FindAll(ctx context.Context, kind model.CatalogKind) ([]string, error) {
	c, err := r.collection(kind)
	if err != nil {
		return nil, err
	}
	return c.load(ctx, kind.Defaults())
}

func (r *catalogRepo) SaveAll(ctx context.Context, kind model.CatalogKind, values []string) error {
	c, err := r.collection(kind)
	if err != nil {
		return err
	}
	return c.save(ctx, values)
}
