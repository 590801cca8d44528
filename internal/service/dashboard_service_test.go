package service

import (
	"context"
	"testing"
	"time"

	"go-retail-erp/internal/model"
	"go-retail-erp/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard_EmptyStoreThenOneSale(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	stats, err := e.dashboard.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.ProductCount)
	assert.Zero(t, stats.SaleCount)
	assert.Zero(t, stats.CustomerCount)
	assert.True(t, stats.Revenue.IsZero())

	p := e.product(t, "Tee", "10", 5)
	c := e.customer(t, "Ana")
	_, err = e.sales.RecordSale(ctx, &RecordSaleRequest{
		CustomerID: c.ID,
		Platform:   "Physical Store",
		Items:      []SaleItemRequest{{ProductID: p.ID, Quantity: 3}},
	})
	require.NoError(t, err)

	stats, err = e.dashboard.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, e.quantity(t, p.ID))
	assert.Equal(t, 1, stats.ProductCount)
	assert.Equal(t, 1, stats.CustomerCount)
	assert.Equal(t, 1, stats.SaleCount)
	assert.True(t, stats.Revenue.Equal(dec("30")))
	assert.Equal(t, 1, stats.LowStockCount)
	assert.True(t, stats.InventoryValue.Equal(dec("20")))
	assert.True(t, stats.InventoryCost.Equal(dec("10")))
	assert.True(t, stats.RevenueByPlatform["Physical Store"].Equal(dec("30")))
}

func TestDashboard_RevenueMatchesStoredTotals(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	a := e.product(t, "Tee", "10", 10)
	b := e.product(t, "Socks", "5", 10)
	j := e.product(t, "Jeans", "20", 10)
	c := e.customer(t, "Ana")

	first, err := e.sales.RecordSale(ctx, &RecordSaleRequest{
		CustomerID: c.ID,
		Items:      []SaleItemRequest{{ProductID: a.ID, Quantity: 2}, {ProductID: b.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	second, err := e.sales.RecordSale(ctx, &RecordSaleRequest{
		CustomerID: c.ID,
		Items:      []SaleItemRequest{{ProductID: j.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.True(t, first.Total.Equal(dec("25")))
	assert.True(t, second.Total.Equal(dec("40")))

	stats, err := e.dashboard.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.True(t, stats.Revenue.Equal(dec("65")))
	assert.True(t, stats.Revenue.Equal(first.Total.Add(second.Total)))

	mismatched, err := e.dashboard.VerifyTotals(ctx)
	require.NoError(t, err)
	assert.Empty(t, mismatched)
}

func TestDashboard_RevenueIgnoresStoredTotal(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	// a tampered document: stored total disagrees with the items
	require.NoError(t, repository.NewSaleRepo(e.store).SaveAll(ctx, []model.Sale{{
		ID:    "s1",
		Items: []model.SaleItem{{ProductID: "p1", Price: dec("7.5"), Quantity: 2}},
		Total: dec("100"),
		Date:  time.Now(),
	}}))

	stats, err := e.dashboard.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.True(t, stats.Revenue.Equal(dec("15")))

	mismatched, err := e.dashboard.VerifyTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"s1"}, mismatched)
}

func TestLowStockCount(t *testing.T) {
	products := []model.Product{{Quantity: 0}, {Quantity: 9}, {Quantity: 10}, {Quantity: 42}}
	assert.Equal(t, 2, LowStockCount(products, 10))
	assert.Equal(t, 0, LowStockCount(products, 0))
	assert.Equal(t, 0, LowStockCount(nil, 10))
}

func TestInventoryValueAndCost(t *testing.T) {
	products := []model.Product{
		{CostPrice: dec("4.35"), SellingPrice: dec("12.99"), Quantity: 3},
		{CostPrice: dec("20"), SellingPrice: dec("49.90"), Quantity: 0},
	}
	assert.True(t, InventoryValue(products).Equal(dec("38.97")))
	assert.True(t, InventoryCost(products).Equal(dec("13.05")))
	assert.True(t, InventoryValue(nil).Equal(decimal.Zero))
}
