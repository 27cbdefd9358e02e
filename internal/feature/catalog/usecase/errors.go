// Package usecase implements the business logic for the catalog feature.
package usecase

import "errors"

var (
	// ErrProductNotFound is returned when a product cannot be found by ID.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidPrice is returned when a price input cannot be parsed
	// into a non-negative integer rupiah amount.
	ErrInvalidPrice = errors.New("invalid price")

	// ErrInvalidStock is returned when a stock value is negative.
	ErrInvalidStock = errors.New("invalid stock")
)
