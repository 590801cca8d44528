package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(productID, price string, qty int) SaleItem {
	return SaleItem{ProductID: productID, ProductName: productID, Price: decimal.RequireFromString(price), Quantity: qty}
}

func TestDraft_TotalAndStaged(t *testing.T) {
	d := NewDraft()
	assert.NotEmpty(t, d.ID)
	assert.True(t, d.Total().IsZero())

	d.Items = append(d.Items, item("a", "10", 2), item("b", "5", 1), item("a", "10", 1))
	assert.True(t, d.Total().Equal(decimal.NewFromInt(35)))
	assert.Equal(t, 3, d.StagedQuantity("a"))
	assert.Equal(t, 0, d.StagedQuantity("c"))
	assert.Equal(t, map[string]int{"a": 3, "b": 1}, d.QuantitiesByProduct())
}

func TestDraft_RemoveItem(t *testing.T) {
	d := NewDraft()
	d.Items = append(d.Items, item("a", "1", 1), item("b", "2", 1), item("c", "3", 1))
	clone := d.Clone()

	assert.True(t, d.RemoveItem(1))
	require.Len(t, d.Items, 2)
	assert.Equal(t, "c", d.Items[1].ProductID)

	assert.False(t, d.RemoveItem(-1))
	assert.False(t, d.RemoveItem(2))
	assert.Len(t, d.Items, 2)

	// the clone does not share the backing array
	require.Len(t, clone.Items, 3)
	assert.Equal(t, "b", clone.Items[1].ProductID)
}

func TestDraft_ResetKeepsID(t *testing.T) {
	d := NewDraft()
	id := d.ID
	d.CustomerID = "c1"
	d.Platform = "Website"
	d.Items = append(d.Items, item("a", "1", 1))

	d.Reset()
	assert.Equal(t, id, d.ID)
	assert.Empty(t, d.CustomerID)
	assert.Empty(t, d.Platform)
	assert.NotNil(t, d.Items)
	assert.Empty(t, d.Items)

	resp := d.ToResponse()
	assert.Equal(t, id, resp.ID)
	assert.True(t, resp.Total.IsZero())
}
