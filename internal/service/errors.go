package service

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrSaleNotFound       = errors.New("sale not found")
	ErrDraftNotFound      = errors.New("sale draft not found")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInvalidQuantity    = errors.New("quantity must be greater than zero")
	ErrNoItems            = errors.New("please add at least one item to the sale")
	ErrCustomerRequired   = errors.New("sale requires an existing customer")
	ErrUnknownCatalogKind = errors.New("unknown catalog kind")
)

func insufficientStock(productName string, available int) error {
	if available < 0 {
		available = 0
	}
	return fmt.Errorf("%w: only %d of '%s' available", ErrInsufficientStock, available, productName)
}
