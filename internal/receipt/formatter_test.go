package receipt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_TaxIsBackedOutOfInclusiveTotal(t *testing.T) {
	doc := Format("order-1", 115, nil, "Main Street Store", "Thandi", 15, time.Now())

	// A 115 total at 15% inclusive tax splits into 100 + 15.
	assert.InDelta(t, 100.0, doc.Subtotal, 0.01)
	assert.InDelta(t, 15.0, doc.Tax, 0.01)
	assert.InDelta(t, 115.0, doc.Total, 0.01)
}

func TestFormat_SubtotalAndTaxAlwaysSumToTotal(t *testing.T) {
	for _, total := range []float64{0, 9.99, 250, 1234.56} {
		doc := Format("order-1", total, nil, "Store", "", 15, time.Now())
		assert.InDelta(t, total, doc.Subtotal+doc.Tax, 0.001)
	}
}

func TestFormat_ZeroRateMeansNoTax(t *testing.T) {
	doc := Format("order-1", 200, nil, "Store", "", 0, time.Now())

	assert.InDelta(t, 0.0, doc.Tax, 0.001)
	assert.InDelta(t, 200.0, doc.Subtotal, 0.001)
}

func TestFormat_CarriesItemsThrough(t *testing.T) {
	items := []Item{
		{Name: "Shirt", Price: 250, Qty: 2},
		{Name: "Mug", Price: 80, Qty: 1},
	}
	doc := Format("order-1", 580, items, "Store", "Thandi", 15, time.Now())

	require.Len(t, doc.Items, 2)
	assert.InDelta(t, 500.0, doc.Items[0].LineTotal(), 0.001)
	assert.InDelta(t, 80.0, doc.Items[1].LineTotal(), 0.001)
}

func TestRender_ContainsHeaderTotalsAndFooter(t *testing.T) {
	issued := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	doc := Format("a1b2c3d4e5f6", 115, []Item{{Name: "Mug", Price: 115, Qty: 1}}, "Main Street Store", "Thandi", 15, issued)

	body := Render(doc)

	assert.Contains(t, body, "Main Street Store")
	assert.Contains(t, body, "2026-03-14 10:30:00")
	assert.Contains(t, body, "Order #a1b2c3d4") // first 8 chars only
	assert.Contains(t, body, "1 x Mug")
	assert.Contains(t, body, "SUBTOTAL")
	assert.Contains(t, body, "TAX (15%)")
	assert.Contains(t, body, "R 115.00")
	assert.Contains(t, body, "Served by Thandi")
	assert.Contains(t, body, "Thank you for your support!")
}

func TestRender_LinesFitThermalWidth(t *testing.T) {
	doc := Format("order-1", 580, []Item{{Name: "Shirt", Price: 250, Qty: 2}}, "Store", "Thandi", 15, time.Now())

	for _, line := range strings.Split(Render(doc), "\n") {
		assert.LessOrEqual(t, len(line), width)
	}
}
