package entity

// Sale is one immutable history row written at checkout.
// Every line of one transaction shares the same Nota and Waktu.
type Sale struct {
	// ID is the unique identifier for the history row.
	ID uint `gorm:"primaryKey"`

	// Name is the product name at time of sale.
	Name string `gorm:"size:255;not null"`

	// Price is the unit price actually paid, in whole rupiah.
	Price int `gorm:"not null"`

	// Qty is the quantity sold.
	Qty int `gorm:"not null"`

	// Kasir is the operator (cashier username) who rang up the sale.
	Kasir string `gorm:"size:255;not null"`

	// Waktu is the sale timestamp stored as text. New rows are written
	// as RFC3339; legacy rows may carry other layouts and are parsed
	// leniently at report time.
	Waktu string `gorm:"size:64;not null"`

	// Nota is the human-readable invoice number grouping the rows of
	// one transaction (e.g. CS/150424/0001).
	Nota string `gorm:"size:32;not null;index"`
}

// TableName keeps the original data-file table name so existing
// kasir.db files stay readable.
func (Sale) TableName() string { return "riwayat" }
