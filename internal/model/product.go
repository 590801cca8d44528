package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product is one sellable variant (name + size + color) with its stock on hand.
type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`     // value from the productTypes catalog, not enforced
	Supplier     string          `json:"supplier"` // value from the suppliers catalog, not enforced
	Size         string          `json:"size"`
	Color        string          `json:"color"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	Quantity     int             `json:"quantity"`
}

// DisplayName is the label frozen into sale items, e.g. "Basic Tee (M, Black)".
func (p Product) DisplayName() string {
	return fmt.Sprintf("%s (%s, %s)", p.Name, p.Size, p.Color)
}

// InStock reports whether at least one unit is on hand.
func (p Product) InStock() bool {
	return p.Quantity > 0
}
