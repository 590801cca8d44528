package repository

import (
	"context"

	"go-retail-erp/internal/model"
	"go-retail-erp/pkg/kvstore"
)

// SaleRepository has no update or delete: posted sales are immutable.
type SaleRepository interface {
	FindAll(ctx context.Context) ([]model.Sale, error)
	FindByID(ctx context.Context, id string) (*model.Sale, error)
	SaveAll(ctx context.Context, sales []model.Sale) error
	WithTx(b kvstore.Bucket) SaleRepository
}

type saleRepo struct {
	c collection[model.Sale]
}

func NewSaleRepo(b kvstore.Bucket) SaleRepository {
	return &saleRepo{c: collection[model.Sale]{bucket: b, key: KeySales}}
}

func (r *saleRepo) WithTx(b kvstore.Bucket) SaleRepository {
	return NewSaleRepo(b)
}

func (r *saleRepo) FindAll(ctx context.Context) ([]model.Sale, error) {
	return r.c.load(ctx, nil)
}

func (r *saleRepo) FindByID(ctx context.Context, id string) (*model.Sale, error) {
	sales, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sales {
		if sales[i].ID == id {
			return &sales[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *saleRepo) SaveAll(ctx context.Context, sales []model.Sale) error {
	return r.c.save(ctx, sales)
}
