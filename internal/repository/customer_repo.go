package repository

import (
	"context"

	"go-retail-erp/internal/model"
	"go-retail-erp/pkg/kvstore"
)

type CustomerRepository interface {
	FindAll(ctx context.Context) ([]model.Customer, error)
	FindByID(ctx context.Context, id string) (*model.Customer, error)
	SaveAll(ctx context.Context, customers []model.Customer) error
	WithTx(b kvstore.Bucket) CustomerRepository
}

type customerRepo struct {
	c collection[model.Customer]
}

func NewCustomerRepo(b kvstore.Bucket) CustomerRepository {
	return &customerRepo{c: collection[model.Customer]{bucket: b, key: KeyCustomers}}
}

func (r *customerRepo) WithTx(b kvstore.Bucket) CustomerRepository {
	return NewCustomerRepo(b)
}

func (r *customerRepo) FindAll(ctx context.Context) ([]model.Customer, error) {
	return r.c.load(ctx, nil)
}

func (r *customerRepo) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	customers, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].ID == id {
			return &customers[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *customerRepo) SaveAll(ctx context.Context, customers []model.Customer) error {
	return r.c.save(ctx, customers)
}
