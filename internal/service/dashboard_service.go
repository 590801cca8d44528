package service

import (
	"context"

	"go-retail-erp/internal/model"
	"go-retail-erp/internal/repository"

	"github.com/shopspring/decimal"
)

type DashboardStats struct {
	ProductCount      int                        `json:"productCount"`
	CustomerCount     int                        `json:"customerCount"`
	SaleCount         int                        `json:"saleCount"`
	Revenue           decimal.Decimal            `json:"revenue"`
	LowStockCount     int                        `json:"lowStockCount"`
	LowStockThreshold int                        `json:"lowStockThreshold"`
	InventoryValue    decimal.Decimal            `json:"inventoryValue"`
	InventoryCost     decimal.Decimal            `json:"inventoryCost"`
	RevenueByPlatform map[string]decimal.Decimal `json:"revenueByPlatform"`
}

type DashboardService interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
	// VerifyTotals returns the ids of sales whose stored total disagrees with
	// their items. It should always be empty.
	VerifyTotals(ctx context.Context) ([]string, error)
}

type dashboardService struct {
	products          repository.ProductRepository
	customers         repository.CustomerRepository
	sales             repository.SaleRepository
	lowStockThreshold int
}

func NewDashboardService(
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	sales repository.SaleRepository,
	lowStockThreshold int,
) DashboardService {
	return &dashboardService{
		products:          products,
		customers:         customers,
		sales:             sales,
		lowStockThreshold: lowStockThreshold,
	}
}

func (s *dashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.customers.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.sales.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		ProductCount:      len(products),
		CustomerCount:     len(customers),
		SaleCount:         len(sales),
		Revenue:           Revenue(sales),
		LowStockCount:     LowStockCount(products, s.lowStockThreshold),
		LowStockThreshold: s.lowStockThreshold,
		InventoryValue:    InventoryValue(products),
		InventoryCost:     InventoryCost(products),
		RevenueByPlatform: RevenueByPlatform(sales),
	}, nil
}

func (s *dashboardService) VerifyTotals(ctx context.Context) ([]string, error) {
	sales, err := s.sales.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return MismatchedTotals(sales), nil
}

// Revenue sums price x quantity over every item of every sale. Stored sale
// totals are not used.
func Revenue(sales []model.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, sale := range sales {
		total = total.Add(sale.ItemsTotal())
	}
	return total
}

// RevenueByPlatform groups item revenue by sale platform. Sales without a
// platform are grouped under "".
func RevenueByPlatform(sales []model.Sale) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, sale := range sales {
		out[sale.Platform] = out[sale.Platform].Add(sale.ItemsTotal())
	}
	return out
}

// LowStockCount counts products with quantity strictly below threshold.
func LowStockCount(products []model.Product, threshold int) int {
	n := 0
	for _, p := range products {
		if p.Quantity < threshold {
			n++
		}
	}
	return n
}

func InventoryValue(products []model.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.SellingPrice.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}
	return total
}

func InventoryCost(products []model.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.CostPrice.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}
	return total
}

func MismatchedTotals(sales []model.Sale) []string {
	ids := []string{}
	for _, sale := range sales {
		if !sale.Total.Equal(sale.ItemsTotal()) {
			ids = append(ids, sale.ID)
		}
	}
	return ids
}
