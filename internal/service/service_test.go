package service

import (
	"context"
	"sync"
	"testing"

	"go-retail-erp/internal/model"
	"go-retail-erp/internal/repository"
	"go-retail-erp/pkg/kvstore"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	events []map[string]interface{}
}

func (r *recorder) Publish(payload map[string]interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, payload)
}

func (r *recorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e["type"].(string))
	}
	return out
}

type env struct {
	store     kvstore.Store
	events    *recorder
	products  ProductService
	customers CustomerService
	catalog   CatalogService
	sales     SalesService
	dashboard DashboardService
	backup    BackupService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := kvstore.NewMemoryStore()
	events := &recorder{}

	productRepo := repository.NewProductRepo(store)
	customerRepo := repository.NewCustomerRepo(store)
	saleRepo := repository.NewSaleRepo(store)

	return &env{
		store:     store,
		events:    events,
		products:  NewProductService(store, productRepo, events),
		customers: NewCustomerService(store, customerRepo, events),
		catalog:   NewCatalogService(store, repository.NewCatalogRepo(store), events),
		sales:     NewSalesService(store, productRepo, customerRepo, saleRepo, NewDraftStore(), events),
		dashboard: NewDashboardService(productRepo, customerRepo, saleRepo, 10),
		backup:    NewBackupService(store, events),
	}
}

func (e *env) product(t *testing.T, name string, price string, qty int) *model.Product {
	t.Helper()
	p, err := e.products.CreateProduct(context.Background(), &ProductRequest{
		Name:         name,
		Type:         "T-Shirt",
		Supplier:     "Supplier A",
		Size:         "M",
		Color:        "Black",
		CostPrice:    decimal.RequireFromString(price).Div(decimal.NewFromInt(2)),
		SellingPrice: decimal.RequireFromString(price),
		Quantity:     qty,
	})
	require.NoError(t, err)
	return p
}

func (e *env) customer(t *testing.T, name string) *model.Customer {
	t.Helper()
	c, err := e.customers.CreateCustomer(context.Background(), &CustomerRequest{
		Name:  name,
		Email: "buyer@example.com",
		Phone: "555-0100",
	})
	require.NoError(t, err)
	return c
}

func (e *env) quantity(t *testing.T, id string) int {
	t.Helper()
	p, err := e.products.GetProductByID(context.Background(), id)
	require.NoError(t, err)
	return p.Quantity
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func strPtr(s string) *string {
	return &s
}
