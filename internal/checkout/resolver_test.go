package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-terminal-service/internal/cart"
	"github.com/fekuna/omnipos-terminal-service/internal/model"
	"github.com/fekuna/omnipos-terminal-service/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func sizedRows() []model.Inventory {
	return []model.Inventory{
		{ID: "inv-s", ProductID: "p1", SizeName: strPtr("S"), Quantity: 5},
		{ID: "inv-m", ProductID: "p1", SizeName: strPtr("M"), Quantity: 3},
		{ID: "inv-l", ProductID: "p1", SizeName: strPtr("L"), Quantity: 0},
	}
}

func TestResolveInventory_MatchesSelectedSize(t *testing.T) {
	line := cart.Line{ProductID: "p1", Name: "Shirt", SelectedSize: strPtr("M")}

	inv, err := ResolveInventory(line, sizedRows(), SizeMatchFallback)
	require.NoError(t, err)
	assert.Equal(t, "inv-m", inv.ID)
}

func TestResolveInventory_TrimsWhitespaceOnBothSides(t *testing.T) {
	rows := []model.Inventory{
		{ID: "inv-a", SizeName: strPtr(" M ")},
		{ID: "inv-b", SizeName: strPtr("L")},
	}
	line := cart.Line{ProductID: "p1", Name: "Shirt", SelectedSize: strPtr("M ")}

	inv, err := ResolveInventory(line, rows, SizeMatchStrict)
	require.NoError(t, err)
	assert.Equal(t, "inv-a", inv.ID)
}

func TestResolveInventory_SizeComparisonIsCaseSensitive(t *testing.T) {
	line := cart.Line{ProductID: "p1", Name: "Shirt", SelectedSize: strPtr("m")}

	inv, err := ResolveInventory(line, sizedRows(), SizeMatchFallback)
	require.NoError(t, err)
	// "m" does not match "M"; falls back to the first row.
	assert.Equal(t, "inv-s", inv.ID)
}

func TestResolveInventory_FallsBackToFirstRowWhenNoMatch(t *testing.T) {
	line := cart.Line{ProductID: "p1", Name: "Shirt", SelectedSize: strPtr("XXL")}

	inv, err := ResolveInventory(line, sizedRows(), SizeMatchFallback)
	require.NoError(t, err)
	assert.Equal(t, "inv-s", inv.ID)
}

func TestResolveInventory_StrictRejectsUnmatchedSize(t *testing.T) {
	line := cart.Line{ProductID: "p1", Name: "Shirt", SelectedSize: strPtr("XXL")}

	inv, err := ResolveInventory(line, sizedRows(), SizeMatchStrict)
	require.Error(t, err)
	assert.Nil(t, inv)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestResolveInventory_NoSizeSelectedUsesFirstRow(t *testing.T) {
	rows := []model.Inventory{
		{ID: "inv-only", ProductID: "p2", Quantity: 10},
	}
	line := cart.Line{ProductID: "p2", Name: "Mug"}

	inv, err := ResolveInventory(line, rows, SizeMatchStrict)
	require.NoError(t, err)
	assert.Equal(t, "inv-only", inv.ID)
}

func TestResolveInventory_BlankSelectedSizeUsesFirstRow(t *testing.T) {
	line := cart.Line{ProductID: "p1", Name: "Shirt", SelectedSize: strPtr("   ")}

	inv, err := ResolveInventory(line, sizedRows(), SizeMatchStrict)
	require.NoError(t, err)
	assert.Equal(t, "inv-s", inv.ID)
}

func TestResolveInventory_EmptyRowsIsAnError(t *testing.T) {
	line := cart.Line{ProductID: "p9", Name: "Ghost"}

	inv, err := ResolveInventory(line, nil, SizeMatchFallback)
	require.Error(t, err)
	assert.Nil(t, inv)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "Ghost")
}

func TestResolveInventory_NilSizeRowsAreSkippedDuringMatch(t *testing.T) {
	rows := []model.Inventory{
		{ID: "inv-nosize", SizeName: nil},
		{ID: "inv-m", SizeName: strPtr("M")},
	}
	line := cart.Line{ProductID: "p1", Name: "Shirt", SelectedSize: strPtr("M")}

	inv, err := ResolveInventory(line, rows, SizeMatchStrict)
	require.NoError(t, err)
	assert.Equal(t, "inv-m", inv.ID)
}
