package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Draft is a sale being composed. Nothing in it is persisted until it is posted.
type Draft struct {
	ID         string     `json:"id"`
	CustomerID string     `json:"customerId"`
	Platform   string     `json:"platform"`
	Items      []SaleItem `json:"items"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// DraftResponse is a Draft plus its computed total, for API responses.
type DraftResponse struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customerId"`
	Platform   string          `json:"platform"`
	Items      []SaleItem      `json:"items"`
	Total      decimal.Decimal `json:"total"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func NewDraft() *Draft {
	return &Draft{
		ID:        NewID(),
		Items:     []SaleItem{},
		CreatedAt: time.Now(),
	}
}

// Total is recomputed from the items on every call.
func (d *Draft) Total() decimal.Decimal {
	return SumItems(d.Items)
}

// StagedQuantity is the quantity of productID already in the draft.
func (d *Draft) StagedQuantity(productID string) int {
	n := 0
	for _, item := range d.Items {
		if item.ProductID == productID {
			n += item.Quantity
		}
	}
	return n
}

// QuantitiesByProduct sums item quantities per product id.
func (d *Draft) QuantitiesByProduct() map[string]int {
	out := make(map[string]int, len(d.Items))
	for _, item := range d.Items {
		out[item.ProductID] += item.Quantity
	}
	return out
}

// RemoveItem drops the item at index. Out of range is a no-op and returns false.
func (d *Draft) RemoveItem(index int) bool {
	if index < 0 || index >= len(d.Items) {
		return false
	}
	d.Items = append(d.Items[:index:index], d.Items[index+1:]...)
	return true
}

// Reset returns the draft to the empty state, keeping its id.
func (d *Draft) Reset() {
	d.CustomerID = ""
	d.Platform = ""
	d.Items = []SaleItem{}
}

// Clone returns a deep copy so callers can read it without holding locks.
func (d *Draft) Clone() *Draft {
	c := *d
	c.Items = append([]SaleItem{}, d.Items...)
	return &c
}

func (d *Draft) ToResponse() DraftResponse {
	return DraftResponse{
		ID:         d.ID,
		CustomerID: d.CustomerID,
		Platform:   d.Platform,
		Items:      append([]SaleItem{}, d.Items...),
		Total:      d.Total(),
		CreatedAt:  d.CreatedAt,
	}
}
