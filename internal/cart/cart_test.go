package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-terminal-service/pkg/apperrors"
)

func shirtLine() Line {
	return Line{ProductID: "p-shirt", Name: "Shirt", SKU: "SH-01", Price: 250, Qty: 1, Sizes: []string{"S", "M", "L"}, Stock: 3}
}

func TestAddLine_AppendsNewProduct(t *testing.T) {
	c := New("till-1")

	require.NoError(t, c.AddLine(shirtLine()))
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 1, c.Lines[0].Qty)
	assert.InDelta(t, 250.0, c.Total(), 0.001)
}

func TestAddLine_MergesByProductAndBumpsQty(t *testing.T) {
	c := New("till-1")
	require.NoError(t, c.AddLine(shirtLine()))
	require.NoError(t, c.AddLine(shirtLine()))

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Qty)
	assert.InDelta(t, 500.0, c.Total(), 0.001)
}

func TestAddLine_StopsAtObservedStock(t *testing.T) {
	c := New("till-1")
	for i := 0; i < 3; i++ {
		require.NoError(t, c.AddLine(shirtLine()))
	}

	err := c.AddLine(shirtLine())
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.Equal(t, 3, c.Lines[0].Qty)
}

func TestAddLine_RejectsOutOfStockProduct(t *testing.T) {
	c := New("till-1")
	line := shirtLine()
	line.Stock = 0

	err := c.AddLine(line)
	require.Error(t, err)
	assert.Empty(t, c.Lines)
}

func TestUpdateQty_ClampsToAtLeastOne(t *testing.T) {
	c := New("till-1")
	require.NoError(t, c.AddLine(shirtLine()))

	require.NoError(t, c.UpdateQty("p-shirt", 0))
	assert.Equal(t, 1, c.Lines[0].Qty)

	require.NoError(t, c.UpdateQty("p-shirt", -5))
	assert.Equal(t, 1, c.Lines[0].Qty)
}

func TestUpdateQty_ClampsToObservedStock(t *testing.T) {
	c := New("till-1")
	require.NoError(t, c.AddLine(shirtLine()))

	require.NoError(t, c.UpdateQty("p-shirt", 99))
	assert.Equal(t, 3, c.Lines[0].Qty)
}

func TestUpdateQty_UnknownProduct(t *testing.T) {
	c := New("till-1")
	err := c.UpdateQty("nope", 2)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestSelectSize_TrimsAndValidates(t *testing.T) {
	c := New("till-1")
	require.NoError(t, c.AddLine(shirtLine()))

	require.NoError(t, c.SelectSize("p-shirt", " M "))
	require.NotNil(t, c.Lines[0].SelectedSize)
	assert.Equal(t, "M", *c.Lines[0].SelectedSize)
}

func TestSelectSize_RejectsUnknownSize(t *testing.T) {
	c := New("till-1")
	require.NoError(t, c.AddLine(shirtLine()))

	err := c.SelectSize("p-shirt", "XXL")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.Nil(t, c.Lines[0].SelectedSize)
}

func TestRemoveLineAndClear(t *testing.T) {
	c := New("till-1")
	require.NoError(t, c.AddLine(shirtLine()))
	require.NoError(t, c.AddLine(Line{ProductID: "p-mug", Name: "Mug", Price: 80, Qty: 1, Stock: 5}))

	c.RemoveLine("p-shirt")
	require.Len(t, c.Lines, 1)
	assert.Equal(t, "p-mug", c.Lines[0].ProductID)

	c.Clear()
	assert.Empty(t, c.Lines)
	assert.Zero(t, c.Total())
}

func TestLinesMissingSize(t *testing.T) {
	c := New("till-1")
	require.NoError(t, c.AddLine(shirtLine()))
	require.NoError(t, c.AddLine(Line{ProductID: "p-mug", Name: "Mug", Price: 80, Qty: 1, Stock: 5}))

	missing := c.LinesMissingSize()
	require.Len(t, missing, 1)
	assert.Equal(t, "p-shirt", missing[0].ProductID)

	require.NoError(t, c.SelectSize("p-shirt", "M"))
	assert.Empty(t, c.LinesMissingSize())
}

func TestTotal_UsesPriceSnapshot(t *testing.T) {
	c := New("till-1")
	require.NoError(t, c.AddLine(shirtLine()))
	require.NoError(t, c.UpdateQty("p-shirt", 2))

	// The cart never re-reads the catalog; total comes from add-time prices.
	assert.InDelta(t, 500.0, c.Total(), 0.001)
}
