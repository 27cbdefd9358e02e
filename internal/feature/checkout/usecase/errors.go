// Package usecase implements the business logic for the checkout feature.
package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCart is returned when checkout is attempted with no cart lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrProductNotFound is returned when a cart line references a product
	// that does not exist in the catalog.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidQty is returned when a requested quantity is not positive.
	ErrInvalidQty = errors.New("quantity must be positive")

	// ErrLineNotFound is returned when a cart line index is out of range.
	ErrLineNotFound = errors.New("cart line not found")

	// ErrNotaNotFound is returned when no sale rows exist for an invoice number.
	ErrNotaNotFound = errors.New("invoice not found")
)

// StockShortageError reports which product had insufficient stock.
// The whole checkout is aborted and the cart is left untouched.
type StockShortageError struct {
	Product string
}

func (e *StockShortageError) Error() string {
	return fmt.Sprintf("insufficient stock for %s", e.Product)
}

// IsStockShortage reports whether err is a stock shortage.
func IsStockShortage(err error) bool {
	var s *StockShortageError
	return errors.As(err, &s)
}
