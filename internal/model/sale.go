package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem is a snapshot of a product line at the time it was added to a sale.
// Later edits to the product never change it.
type SaleItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// Subtotal is price x quantity.
func (i SaleItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Sale is a posted sale. Immutable once stored.
type Sale struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"` // snapshot
	Platform     string          `json:"platform"`
	Items        []SaleItem      `json:"items"`
	Total        decimal.Decimal `json:"total"`
	Date         time.Time       `json:"date"`
}

// ItemsTotal recomputes the total from the items, ignoring the stored Total.
func (s Sale) ItemsTotal() decimal.Decimal {
	return SumItems(s.Items)
}

// SumItems returns the sum of price x quantity over items.
func SumItems(items []SaleItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
