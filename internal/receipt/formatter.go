package receipt

import "time"

// Format builds the receipt document for a sale. The total is tax-inclusive:
// tax = total - total/(1 + rate/100), subtotal is the remainder.
func Format(orderID string, total float64, items []Item, storeName, cashierName string, taxRate float64, issuedAt time.Time) Document {
	tax := total - total/(1+taxRate/100)

	return Document{
		OrderID:     orderID,
		StoreName:   storeName,
		CashierName: cashierName,
		IssuedAt:    issuedAt,
		Items:       items,
		TaxRate:     taxRate,
		Subtotal:    total - tax,
		Tax:         tax,
		Total:       total,
	}
}
