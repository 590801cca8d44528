package repository

import (
	"context"

	"go-retail-erp/internal/model"
	"go-retail-erp/pkg/kvstore"
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (*model.Product, error)
	SaveAll(ctx context.Context, products []model.Product) error
	// WithTx binds the repository to the bucket of a running Store.Update.
	WithTx(b kvstore.Bucket) ProductRepository
}

type productRepo struct {
	c collection[model.Product]
}

func NewProductRepo(b kvstore.Bucket) ProductRepository {
	return &productRepo{c: collection[model.Product]{bucket: b, key: KeyProducts}}
}

func (r *productRepo) WithTx(b kvstore.Bucket) ProductRepository {
	return NewProductRepo(b)
}

func (r *productRepo) FindAll(ctx context.Context) ([]model.Product, error) {
	return r.c.load(ctx, nil)
}

func (r *productRepo) FindByID(ctx context.Context, id string) (*model.Product, error) {
	products, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *productRepo) SaveAll(ctx context.Context, products []model.Product) error {
	return r.c.save(ctx, products)
}
