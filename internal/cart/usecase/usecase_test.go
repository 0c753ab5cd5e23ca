package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-terminal-service/internal/cart"
	invdto "github.com/fekuna/omnipos-terminal-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-terminal-service/internal/model"
	proddto "github.com/fekuna/omnipos-terminal-service/internal/product/dto"
	"github.com/fekuna/omnipos-terminal-service/pkg/apperrors"
	"github.com/fekuna/omnipos-terminal-service/pkg/logger"
)

func strPtr(s string) *string { return &s }

type memStore struct {
	carts map[string]*cart.Cart
}

func newMemStore() *memStore { return &memStore{carts: map[string]*cart.Cart{}} }

func (m *memStore) Get(_ context.Context, terminal string) (*cart.Cart, error) {
	if c, ok := m.carts[terminal]; ok {
		return c, nil
	}
	return cart.New(terminal), nil
}

func (m *memStore) Save(_ context.Context, c *cart.Cart) error {
	m.carts[c.Terminal] = c
	return nil
}

func (m *memStore) Clear(_ context.Context, terminal string) error {
	delete(m.carts, terminal)
	return nil
}

type mockProductRepo struct {
	products map[string]*model.Product // keyed by id
}

func (m *mockProductRepo) FindByID(_ context.Context, id string) (*model.Product, error) {
	return m.products[id], nil
}

func (m *mockProductRepo) FindBySKU(_ context.Context, sku string) (*model.Product, error) {
	for _, p := range m.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockProductRepo) Create(context.Context, *model.Product) error { return nil }
func (m *mockProductRepo) FindAll(context.Context, *proddto.ProductFilters) ([]model.Product, int, error) {
	return nil, 0, nil
}
func (m *mockProductRepo) FindAllWithInventory(context.Context, string) ([]model.Product, error) {
	return nil, nil
}
func (m *mockProductRepo) Update(context.Context, *model.Product) error { return nil }
func (m *mockProductRepo) Delete(context.Context, string) error         { return nil }
func (m *mockProductRepo) IsSKUUnique(context.Context, string, string) (bool, error) {
	return true, nil
}

type mockStockRepo struct {
	rows map[string][]model.Inventory
}

func (m *mockStockRepo) ListByProduct(_ context.Context, productID, _ string) ([]model.Inventory, error) {
	return m.rows[productID], nil
}

func (m *mockStockRepo) GetByID(context.Context, string) (*model.Inventory, error) { return nil, nil }
func (m *mockStockRepo) FindAll(context.Context, *invdto.InventoryFilters) ([]model.Inventory, int, error) {
	return nil, 0, nil
}
func (m *mockStockRepo) Upsert(context.Context, *model.Inventory) error { return nil }
func (m *mockStockRepo) DecrementConditional(context.Context, string, int) (int, bool, error) {
	return 0, false, nil
}
func (m *mockStockRepo) LogMovement(context.Context, *model.InventoryMovement) error { return nil }
func (m *mockStockRepo) ListMovements(context.Context, *invdto.MovementFilters) ([]model.InventoryMovement, int, error) {
	return nil, 0, nil
}
func (m *mockStockRepo) AdjustStockWithMovement(context.Context, *model.Inventory, *model.InventoryMovement) error {
	return nil
}

func shirt() *model.Product {
	return &model.Product{
		BaseModel: model.BaseModel{ID: "p-shirt"},
		SKU:       "SH-01",
		Name:      "Shirt",
		Sizes:     model.StringList{"S", "M", "L"},
		IsActive:  true,
	}
}

func mug() *model.Product {
	return &model.Product{
		BaseModel: model.BaseModel{ID: "p-mug"},
		SKU:       "MG-01",
		Name:      "Mug",
		IsActive:  true,
	}
}

func newCartUC(products map[string]*model.Product, rows map[string][]model.Inventory) (cart.UseCase, *memStore) {
	store := newMemStore()
	uc := NewCartUseCase(store, &mockProductRepo{products: products}, &mockStockRepo{rows: rows}, logger.NewNop())
	return uc, store
}

func TestAddProduct_SnapshotsPriceFromFirstRow(t *testing.T) {
	uc, _ := newCartUC(
		map[string]*model.Product{"p-mug": mug()},
		map[string][]model.Inventory{"p-mug": {
			{ID: "inv-mug", ProductID: "p-mug", Quantity: 4, Price: 80},
		}},
	)

	c, err := uc.AddProduct(context.Background(), "till-1", "p-mug", "loc-1")
	require.NoError(t, err)
	require.Len(t, c.Lines, 1)
	assert.InDelta(t, 80.0, c.Lines[0].Price, 0.001)
	assert.Equal(t, 4, c.Lines[0].Stock)
	assert.Nil(t, c.Lines[0].SelectedSize)
}

func TestAddProduct_SumsStockAcrossSizes(t *testing.T) {
	uc, _ := newCartUC(
		map[string]*model.Product{"p-shirt": shirt()},
		map[string][]model.Inventory{"p-shirt": {
			{ID: "inv-s", ProductID: "p-shirt", SizeName: strPtr("S"), Quantity: 2, Price: 250},
			{ID: "inv-m", ProductID: "p-shirt", SizeName: strPtr("M"), Quantity: 3, Price: 250},
		}},
	)

	c, err := uc.AddProduct(context.Background(), "till-1", "p-shirt", "loc-1")
	require.NoError(t, err)
	assert.Equal(t, 5, c.Lines[0].Stock)
	// Two sizes have stock, so none is auto-chosen.
	assert.Nil(t, c.Lines[0].SelectedSize)
}

func TestAddProduct_AutoSelectsOnlyAvailableSize(t *testing.T) {
	uc, _ := newCartUC(
		map[string]*model.Product{"p-shirt": shirt()},
		map[string][]model.Inventory{"p-shirt": {
			{ID: "inv-s", ProductID: "p-shirt", SizeName: strPtr("S"), Quantity: 0, Price: 250},
			{ID: "inv-m", ProductID: "p-shirt", SizeName: strPtr("M"), Quantity: 3, Price: 250},
		}},
	)

	c, err := uc.AddProduct(context.Background(), "till-1", "p-shirt", "loc-1")
	require.NoError(t, err)
	require.NotNil(t, c.Lines[0].SelectedSize)
	assert.Equal(t, "M", *c.Lines[0].SelectedSize)
}

func TestAddProduct_NoStockRecordRejected(t *testing.T) {
	uc, _ := newCartUC(map[string]*model.Product{"p-mug": mug()}, map[string][]model.Inventory{})

	_, err := uc.AddProduct(context.Background(), "till-1", "p-mug", "loc-1")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestAddProduct_RequiresLocation(t *testing.T) {
	uc, _ := newCartUC(map[string]*model.Product{"p-mug": mug()}, nil)

	_, err := uc.AddProduct(context.Background(), "till-1", "p-mug", "")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestAddBySKU_TrimsAndResolves(t *testing.T) {
	uc, store := newCartUC(
		map[string]*model.Product{"p-mug": mug()},
		map[string][]model.Inventory{"p-mug": {
			{ID: "inv-mug", ProductID: "p-mug", Quantity: 4, Price: 80},
		}},
	)

	c, err := uc.AddBySKU(context.Background(), "till-1", "  MG-01 ", "loc-1")
	require.NoError(t, err)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, "p-mug", c.Lines[0].ProductID)

	saved, _ := store.Get(context.Background(), "till-1")
	assert.Len(t, saved.Lines, 1)
}

func TestAddBySKU_UnknownSKU(t *testing.T) {
	uc, _ := newCartUC(map[string]*model.Product{}, nil)

	_, err := uc.AddBySKU(context.Background(), "till-1", "NOPE", "loc-1")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.Contains(t, apperrors.Message(err), "NOPE")
}

func TestUpdateQuantityAndRemove_PersistAcrossGets(t *testing.T) {
	uc, _ := newCartUC(
		map[string]*model.Product{"p-mug": mug()},
		map[string][]model.Inventory{"p-mug": {
			{ID: "inv-mug", ProductID: "p-mug", Quantity: 4, Price: 80},
		}},
	)
	ctx := context.Background()

	_, err := uc.AddProduct(ctx, "till-1", "p-mug", "loc-1")
	require.NoError(t, err)

	c, err := uc.UpdateQuantity(ctx, "till-1", "p-mug", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Lines[0].Qty)

	c, err = uc.GetCart(ctx, "till-1")
	require.NoError(t, err)
	assert.Equal(t, 3, c.Lines[0].Qty)

	c, err = uc.RemoveProduct(ctx, "till-1", "p-mug")
	require.NoError(t, err)
	assert.Empty(t, c.Lines)
}
