package service

import (
	"context"
	"errors"
	"fmt"

	"go-retail-erp/internal/model"
	"go-retail-erp/internal/repository"
	"go-retail-erp/internal/ws"
	"go-retail-erp/pkg/kvstore"
	"go-retail-erp/pkg/validator"

	"github.com/shopspring/decimal"
)

type ProductService interface {
	GetAllProducts(ctx context.Context, inStockOnly bool) ([]model.Product, error)
	GetProductByID(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, req *ProductRequest) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, req *ProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// ProductRequest carries the editable product fields. Prices decode from JSON
// numbers or strings.
type ProductRequest struct {
	Name         string          `json:"name" validate:"required"`
	Type         string          `json:"type"`
	Supplier     string          `json:"supplier"`
	Size         string          `json:"size"`
	Color        string          `json:"color"`
	CostPrice    decimal.Decimal `json:"costPrice" validate:"decimal_gte0"`
	SellingPrice decimal.Decimal `json:"sellingPrice" validate:"decimal_gte0"`
	Quantity     int             `json:"quantity" validate:"gte=0"`
}

func (r *ProductRequest) toProduct(id string) model.Product {
	return model.Product{
		ID:           id,
		Name:         r.Name,
		Type:         r.Type,
		Supplier:     r.Supplier,
		Size:         r.Size,
		Color:        r.Color,
		CostPrice:    r.CostPrice,
		SellingPrice: r.SellingPrice,
		Quantity:     r.Quantity,
	}
}

type productService struct {
	store    kvstore.Store
	products repository.ProductRepository
	events   Broadcaster
}

func NewProductService(store kvstore.Store, products repository.ProductRepository, events Broadcaster) ProductService {
	return &productService{
		store:    store,
		products: products,
		events:   orNoop(events),
	}
}

func (s *productService) GetAllProducts(ctx context.Context, inStockOnly bool) ([]model.Product, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil || !inStockOnly {
		return products, err
	}
	available := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.InStock() {
			available = append(available, p)
		}
	}
	return available, nil
}

func (s *productService) GetProductByID(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	return product, err
}

func (s *productService) CreateProduct(ctx context.Context, req *ProductRequest) (*model.Product, error) {
	if err := validator.FirstError(req); err != nil {
		return nil, err
	}

	product := req.toProduct(model.NewID())
	err := s.store.Update(ctx, func(b kvstore.Bucket) error {
		repo := s.products.WithTx(b)
		products, err := repo.FindAll(ctx)
		if err != nil {
			return err
		}
		return repo.SaveAll(ctx, append(products, product))
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(map[string]interface{}{
		"type":    ws.EventStockUpdate,
		"action":  "product_created",
		"product": product,
		"message": fmt.Sprintf("Product '%s' created", product.Name),
	})
	return &product, nil
}

// UpdateProduct replaces the stored record, keeping its id. An unknown id
// leaves the collection untouched.
func (s *productService) UpdateProduct(ctx context.Context, id string, req *ProductRequest) (*model.Product, error) {
	if err := validator.FirstError(req); err != nil {
		return nil, err
	}

	updated := req.toProduct(id)
	var oldStock int
	err := s.store.Update(ctx, func(b kvstore.Bucket) error {
		repo := s.products.WithTx(b)
		products, err := repo.FindAll(ctx)
		if err != nil {
			return err
		}
		for i := range products {
			if products[i].ID == id {
				oldStock = products[i].Quantity
				products[i] = updated
				return repo.SaveAll(ctx, products)
			}
		}
		return ErrProductNotFound
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(map[string]interface{}{
		"type":      ws.EventStockUpdate,
		"action":    "product_updated",
		"product":   updated,
		"old_stock": oldStock,
		"new_stock": updated.Quantity,
		"message":   fmt.Sprintf("Product '%s' updated", updated.Name),
	})
	return &updated, nil
}

// DeleteProduct removes the record. Sales that reference it keep their snapshot.
func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	err := s.store.Update(ctx, func(b kvstore.Bucket) error {
		repo := s.products.WithTx(b)
		products, err := repo.FindAll(ctx)
		if err != nil {
			return err
		}
		kept := products[:0]
		for _, p := range products {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		if len(kept) == len(products) {
			return ErrProductNotFound
		}
		return repo.SaveAll(ctx, kept)
	})
	if err != nil {
		return err
	}

	s.events.Publish(map[string]interface{}{
		"type":       ws.EventStockUpdate,
		"action":     "product_deleted",
		"product_id": id,
	})
	return nil
}
