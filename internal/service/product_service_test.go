package service

import (
	"context"
	"testing"

	"go-retail-erp/internal/repository"
	"go-retail-erp/internal/ws"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductService_CRUDPersists(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	tee := e.product(t, "Basic Tee", "12.99", 7)
	jeans := e.product(t, "Slim Jeans", "39.90", 0)
	assert.NotEmpty(t, tee.ID)
	assert.NotEqual(t, tee.ID, jeans.ID)

	updated, err := e.products.UpdateProduct(ctx, tee.ID, &ProductRequest{
		Name:         "Basic Tee",
		Size:         "L",
		Color:        "White",
		CostPrice:    dec("5"),
		SellingPrice: dec("14.50"),
		Quantity:     9,
	})
	require.NoError(t, err)
	assert.Equal(t, tee.ID, updated.ID)

	require.NoError(t, e.products.DeleteProduct(ctx, jeans.ID))

	// a fresh repository over the same store sees exactly what the service returned
	stored, err := repository.NewProductRepo(e.store).FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, updated.ID, stored[0].ID)
	assert.Equal(t, "L", stored[0].Size)
	assert.Equal(t, "White", stored[0].Color)
	assert.Equal(t, 9, stored[0].Quantity)
	assert.True(t, stored[0].CostPrice.Equal(dec("5")))
	assert.True(t, stored[0].SellingPrice.Equal(dec("14.50")))

	assert.Equal(t, []string{ws.EventStockUpdate, ws.EventStockUpdate, ws.EventStockUpdate, ws.EventStockUpdate}, e.events.types())
}

func TestProductService_UnknownIDWritesNothing(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.product(t, "Dress", "25", 3)
	before, _, _ := e.store.Get(ctx, repository.KeyProducts)

	_, err := e.products.UpdateProduct(ctx, "missing", &ProductRequest{Name: "x"})
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.ErrorIs(t, e.products.DeleteProduct(ctx, "missing"), ErrProductNotFound)

	_, err = e.products.GetProductByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrProductNotFound)

	after, _, _ := e.store.Get(ctx, repository.KeyProducts)
	assert.Equal(t, before, after)
}

func TestProductService_Validation(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	tests := []struct {
		name string
		req  ProductRequest
		tag  string
	}{
		{"missing name", ProductRequest{Quantity: 1}, "required"},
		{"negative price", ProductRequest{Name: "Tee", SellingPrice: decimal.NewFromInt(-1)}, "decimal_gte0"},
		{"negative quantity", ProductRequest{Name: "Tee", Quantity: -2}, "gte"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.products.CreateProduct(ctx, &tt.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed on tag '"+tt.tag+"'")
		})
	}

	all, err := e.products.GetAllProducts(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestProductService_InStockFilter(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.product(t, "Tee", "10", 2)
	e.product(t, "Jacket", "80", 0)

	all, err := e.products.GetAllProducts(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	available, err := e.products.GetAllProducts(ctx, true)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "Tee", available[0].Name)
}
