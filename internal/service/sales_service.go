package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-retail-erp/internal/model"
	"go-retail-erp/internal/repository"
	"go-retail-erp/internal/ws"
	"go-retail-erp/pkg/kvstore"
	"go-retail-erp/pkg/validator"
)

type SalesService interface {
	OpenDraft(ctx context.Context, req *DraftRequest) (*model.DraftResponse, error)
	GetDraft(ctx context.Context, id string) (*model.DraftResponse, error)
	UpdateDraft(ctx context.Context, id string, req *DraftRequest) (*model.DraftResponse, error)
	DiscardDraft(ctx context.Context, id string) error
	AddItem(ctx context.Context, draftID string, req *SaleItemRequest) (*model.DraftResponse, error)
	RemoveItem(ctx context.Context, draftID string, index int) (*model.DraftResponse, error)
	PostDraft(ctx context.Context, draftID string) (*model.Sale, error)
	RecordSale(ctx context.Context, req *RecordSaleRequest) (*model.Sale, error)
	GetAllSales(ctx context.Context) ([]model.Sale, error)
	GetSaleByID(ctx context.Context, id string) (*model.Sale, error)
}

// DraftRequest sets the customer and platform of a draft. Nil fields are left
// as they are.
type DraftRequest struct {
	CustomerID *string `json:"customerId"`
	Platform   *string `json:"platform"`
}

type SaleItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"`
}

type RecordSaleRequest struct {
	CustomerID string            `json:"customerId"`
	Platform   string            `json:"platform"`
	Items      []SaleItemRequest `json:"items" validate:"dive"`
}

type salesService struct {
	store     kvstore.Store
	products  repository.ProductRepository
	customers repository.CustomerRepository
	sales     repository.SaleRepository
	drafts    *DraftStore
	events    Broadcaster
}

func NewSalesService(
	store kvstore.Store,
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	sales repository.SaleRepository,
	drafts *DraftStore,
	events Broadcaster,
) SalesService {
	if drafts == nil {
		drafts = NewDraftStore()
	}
	return &salesService{
		store:     store,
		products:  products,
		customers: customers,
		sales:     sales,
		drafts:    drafts,
		events:    orNoop(events),
	}
}

func (s *salesService) OpenDraft(ctx context.Context, req *DraftRequest) (*model.DraftResponse, error) {
	d := s.drafts.Open()
	if req == nil {
		return respond(d), nil
	}
	return s.UpdateDraft(ctx, d.ID, req)
}

func (s *salesService) GetDraft(ctx context.Context, id string) (*model.DraftResponse, error) {
	d, ok := s.drafts.Get(id)
	if !ok {
		return nil, ErrDraftNotFound
	}
	return respond(d), nil
}

// UpdateDraft does not check the customer id; that happens on post.
func (s *salesService) UpdateDraft(ctx context.Context, id string, req *DraftRequest) (*model.DraftResponse, error) {
	d, err := s.drafts.With(id, func(d *model.Draft) error {
		if req.CustomerID != nil {
			d.CustomerID = *req.CustomerID
		}
		if req.Platform != nil {
			d.Platform = *req.Platform
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return respond(d), nil
}

func (s *salesService) DiscardDraft(ctx context.Context, id string) error {
	if !s.drafts.Delete(id) {
		return ErrDraftNotFound
	}
	return nil
}

// AddItem stages a snapshot of the product at its current selling price. The
// stock check counts units of the same product already in the draft.
func (s *salesService) AddItem(ctx context.Context, draftID string, req *SaleItemRequest) (*model.DraftResponse, error) {
	if err := validator.FirstError(req); err != nil {
		return nil, err
	}
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	d, err := s.drafts.With(draftID, func(d *model.Draft) error {
		return stageItem(d, products, *req)
	})
	if err != nil {
		return nil, err
	}
	return respond(d), nil
}

// RemoveItem ignores an out of range index.
func (s *salesService) RemoveItem(ctx context.Context, draftID string, index int) (*model.DraftResponse, error) {
	d, err := s.drafts.With(draftID, func(d *model.Draft) error {
		d.RemoveItem(index)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return respond(d), nil
}

// PostDraft turns the draft into a stored sale and resets it. On any error the
// draft and the store are left as they were.
func (s *salesService) PostDraft(ctx context.Context, draftID string) (*model.Sale, error) {
	var sale *model.Sale
	var changes []stockChange
	_, err := s.drafts.With(draftID, func(d *model.Draft) error {
		var err error
		sale, changes, err = s.commit(ctx, d)
		if err != nil {
			return err
		}
		d.Reset()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishSale(sale, changes)
	return sale, nil
}

// RecordSale composes and posts a sale in one call, applying the AddItem rules
// to each item in order.
func (s *salesService) RecordSale(ctx context.Context, req *RecordSaleRequest) (*model.Sale, error) {
	if err := validator.FirstError(req); err != nil {
		return nil, err
	}
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	d := model.NewDraft()
	d.CustomerID = req.CustomerID
	d.Platform = req.Platform
	for _, item := range req.Items {
		if err := stageItem(d, products, item); err != nil {
			return nil, err
		}
	}

	sale, changes, err := s.commit(ctx, d)
	if err != nil {
		return nil, err
	}
	s.publishSale(sale, changes)
	return sale, nil
}

func (s *salesService) GetAllSales(ctx context.Context) ([]model.Sale, error) {
	return s.sales.FindAll(ctx)
}

func (s *salesService) GetSaleByID(ctx context.Context, id string) (*model.Sale, error) {
	sale, err := s.sales.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrSaleNotFound
	}
	return sale, err
}

type stockChange struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	OldStock int    `json:"old_stock"`
	NewStock int    `json:"new_stock"`
}

// commit writes the sale and the stock decrements in a single store update.
// Stock is checked again against the current products, since it may have
// moved after the items were staged. Items whose product no longer exists are
// kept in the sale without touching stock.
func (s *salesService) commit(ctx context.Context, d *model.Draft) (*model.Sale, []stockChange, error) {
	if len(d.Items) == 0 {
		return nil, nil, ErrNoItems
	}

	var sale model.Sale
	var changes []stockChange
	err := s.store.Update(ctx, func(b kvstore.Bucket) error {
		customer, err := s.customers.WithTx(b).FindByID(ctx, d.CustomerID)
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCustomerRequired
		}
		if err != nil {
			return err
		}

		productRepo := s.products.WithTx(b)
		products, err := productRepo.FindAll(ctx)
		if err != nil {
			return err
		}
		wanted := d.QuantitiesByProduct()
		for _, p := range products {
			if q, ok := wanted[p.ID]; ok && q > p.Quantity {
				return insufficientStock(p.Name, p.Quantity)
			}
		}

		changes = changes[:0]
		for i := range products {
			q, ok := wanted[products[i].ID]
			if !ok {
				continue
			}
			changes = append(changes, stockChange{
				ID:       products[i].ID,
				Name:     products[i].Name,
				OldStock: products[i].Quantity,
				NewStock: products[i].Quantity - q,
			})
			products[i].Quantity -= q
		}

		saleRepo := s.sales.WithTx(b)
		sales, err := saleRepo.FindAll(ctx)
		if err != nil {
			return err
		}
		sale = model.Sale{
			ID:           model.NewID(),
			CustomerID:   customer.ID,
			CustomerName: customer.Name,
			Platform:     d.Platform,
			Items:        append([]model.SaleItem{}, d.Items...),
			Total:        d.Total(),
			Date:         time.Now().UTC(),
		}

		if err := productRepo.SaveAll(ctx, products); err != nil {
			return err
		}
		return saleRepo.SaveAll(ctx, append(sales, sale))
	})
	if err != nil {
		return nil, nil, err
	}
	return &sale, changes, nil
}

func (s *salesService) publishSale(sale *model.Sale, changes []stockChange) {
	s.events.Publish(map[string]interface{}{
		"type":    ws.EventSalePosted,
		"sale":    sale,
		"stock":   changes,
		"message": fmt.Sprintf("Sale recorded for %s: %s", sale.CustomerName, sale.Total.StringFixed(2)),
	})
}

// stageItem validates req against products and appends the snapshot to d.
// d is untouched on error.
func stageItem(d *model.Draft, products []model.Product, req SaleItemRequest) error {
	if req.Quantity <= 0 {
		return ErrInvalidQuantity
	}

	var product *model.Product
	for i := range products {
		if products[i].ID == req.ProductID {
			product = &products[i]
			break
		}
	}
	if product == nil {
		return ErrProductNotFound
	}

	available := product.Quantity - d.StagedQuantity(product.ID)
	if req.Quantity > available {
		return insufficientStock(product.Name, available)
	}

	d.Items = append(d.Items, model.SaleItem{
		ProductID:   product.ID,
		ProductName: product.DisplayName(),
		Price:       product.SellingPrice,
		Quantity:    req.Quantity,
	})
	return nil
}

func respond(d *model.Draft) *model.DraftResponse {
	r := d.ToResponse()
	return &r
}
