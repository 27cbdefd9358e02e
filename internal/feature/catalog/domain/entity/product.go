// Package entity defines the domain entities for the catalog feature.
package entity

import "time"

// Product represents a sellable item in the catalog.
type Product struct {
	// ID is the unique identifier for the product.
	ID uint `gorm:"primaryKey"`

	// Name is the display name shown on the cashier screen and receipts.
	Name string `gorm:"size:255;not null"`

	// Price is the unit price in whole rupiah. Never negative.
	Price int `gorm:"not null"`

	// Stock is the remaining sellable quantity. Never negative;
	// decremented by checkout.
	Stock int `gorm:"not null"`

	// Image is the stored path of the product photo, empty when none
	// was uploaded.
	Image string `gorm:"size:512"`

	// CreatedAt is the timestamp when the product was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the product was last updated.
	UpdatedAt time.Time
}
