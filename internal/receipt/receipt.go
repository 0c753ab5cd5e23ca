// Package receipt turns a completed sale into a printable document. It is
// pure: no database, no network. Delivering the document to a physical
// printer is the Printer collaborator's job.
package receipt

import "time"

type Item struct {
	Name  string
	Price float64
	Qty   int
}

func (i Item) LineTotal() float64 {
	return i.Price * float64(i.Qty)
}

type Document struct {
	OrderID     string
	StoreName   string
	CashierName string
	IssuedAt    time.Time
	Items       []Item
	TaxRate     float64
	Subtotal    float64
	Tax         float64
	Total       float64
}
