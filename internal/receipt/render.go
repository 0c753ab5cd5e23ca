package receipt

import (
	"fmt"
	"strings"
)

// width matches an 80mm thermal printer in its default font.
const width = 42

// Render produces the plain-text receipt body.
func Render(doc Document) string {
	var b strings.Builder

	writeCentered(&b, doc.StoreName)
	writeCentered(&b, doc.IssuedAt.Format("2006-01-02 15:04:05"))
	writeCentered(&b, "Order #"+shortID(doc.OrderID))
	writeDivider(&b)

	for _, item := range doc.Items {
		left := fmt.Sprintf("%d x %s", item.Qty, item.Name)
		right := fmt.Sprintf("R %.2f", item.LineTotal())
		writeRow(&b, left, right)
	}

	writeDivider(&b)
	writeRow(&b, "SUBTOTAL", fmt.Sprintf("R %.2f", doc.Subtotal))
	writeRow(&b, fmt.Sprintf("TAX (%.0f%%)", doc.TaxRate), fmt.Sprintf("R %.2f", doc.Tax))
	writeRow(&b, "TOTAL", fmt.Sprintf("R %.2f", doc.Total))
	writeDivider(&b)

	if doc.CashierName != "" {
		writeCentered(&b, "Served by "+doc.CashierName)
	}
	writeCentered(&b, "Thank you for your support!")

	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func writeCentered(b *strings.Builder, s string) {
	if len(s) >= width {
		b.WriteString(s + "\n")
		return
	}
	pad := (width - len(s)) / 2
	b.WriteString(strings.Repeat(" ", pad) + s + "\n")
}

func writeDivider(b *strings.Builder) {
	b.WriteString(strings.Repeat("-", width) + "\n")
}

func writeRow(b *strings.Builder, left, right string) {
	gap := width - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(left + strings.Repeat(" ", gap) + right + "\n")
}
