// Package entity defines the domain entities for the checkout feature.
package entity

// CartLine is one selected item awaiting checkout.
// Price is snapshotted from the catalog at add time, so later catalog
// edits do not change what the customer pays.
type CartLine struct {
	Name  string
	Price int
	Qty   int
}

// Total returns the line amount (price × quantity).
func (l CartLine) Total() int {
	return l.Price * l.Qty
}

// CartTotal returns the sum of all line amounts.
func CartTotal(lines []CartLine) int {
	total := 0
	for _, l := range lines {
		total += l.Total()
	}
	return total
}
