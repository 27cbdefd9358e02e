package entity

import "fmt"

// NotaPrefix is the fixed prefix of every invoice number.
const NotaPrefix = "CS"

// InvoiceCounter is the per-day running invoice counter.
// The counter is monotonically increasing within one date key and
// starts over at 1 on the first sale of a new day.
type InvoiceCounter struct {
	// Tanggal is the local civil date key, formatted ddmmyy.
	Tanggal string `gorm:"primaryKey;size:6;column:tanggal"`

	// Nomor is the last allocated counter value for the date.
	Nomor int `gorm:"not null;column:nomor"`
}

// TableName keeps the original data-file table name so existing
// kasir.db files stay readable.
func (InvoiceCounter) TableName() string { return "nomor_nota" }

// FormatNota renders an invoice number, e.g. CS/150424/0001.
func FormatNota(dateKey string, nomor int) string {
	return fmt.Sprintf("%s/%s/%04d", NotaPrefix, dateKey, nomor)
}
