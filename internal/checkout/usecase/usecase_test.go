package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-terminal-service/internal/auth"
	"github.com/fekuna/omnipos-terminal-service/internal/cart"
	"github.com/fekuna/omnipos-terminal-service/internal/checkout"
	"github.com/fekuna/omnipos-terminal-service/internal/checkout/dto"
	"github.com/fekuna/omnipos-terminal-service/internal/event"
	invdto "github.com/fekuna/omnipos-terminal-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-terminal-service/internal/model"
	"github.com/fekuna/omnipos-terminal-service/internal/receipt"
	"github.com/fekuna/omnipos-terminal-service/internal/settings"
	"github.com/fekuna/omnipos-terminal-service/pkg/apperrors"
	"github.com/fekuna/omnipos-terminal-service/pkg/logger"
)

func strPtr(s string) *string { return &s }

type mockSaleRepo struct {
	submitErr  error
	order      *model.Order
	lines      []model.OrderLine
	decrements []checkout.Decrement
	calls      int
}

func (m *mockSaleRepo) SubmitSale(_ context.Context, order *model.Order, lines []model.OrderLine, decrements []checkout.Decrement) error {
	m.calls++
	if m.submitErr != nil {
		return m.submitErr
	}
	m.order = order
	m.lines = lines
	m.decrements = decrements
	return nil
}

type mockCartStore struct {
	cart    *cart.Cart
	cleared bool
}

func (m *mockCartStore) Get(_ context.Context, terminal string) (*cart.Cart, error) {
	if m.cart == nil {
		return cart.New(terminal), nil
	}
	return m.cart, nil
}

func (m *mockCartStore) Save(_ context.Context, _ *cart.Cart) error { return nil }

func (m *mockCartStore) Clear(_ context.Context, _ string) error {
	m.cleared = true
	return nil
}

type mockStockRepo struct {
	rows map[string][]model.Inventory // product id -> rows
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

type mockLocationRepo struct{}

func (m *mockLocationRepo) Create(context.Context, *model.Location) error { return nil }
func (m *mockLocationRepo) FindByID(_ context.Context, id string) (*model.Location, error) {
	return &model.Location{Name: "Main Street Store"}, nil
}
func (m *mockLocationRepo) FindActiveStores(context.Context) ([]model.Location, error) {
	return nil, nil
}

type mockSettings struct {
	snapshot settings.Settings
}

func (m *mockSettings) Get(context.Context, string) (settings.Settings, error) {
	return m.snapshot, nil
}
func (m *mockSettings) Save(context.Context, string, settings.Settings) error { return nil }
func (m *mockSettings) Reload(string)                                         {}

type mockPublisher struct {
	published [][]byte
}

func (m *mockPublisher) Publish(_ context.Context, _, value []byte) error {
	m.published = append(m.published, value)
	return nil
}

type mockPrinter struct {
	printed chan receipt.Document
}

func (m *mockPrinter) Print(_ context.Context, doc receipt.Document) error {
	m.printed <- doc
	return nil
}

type fixture struct {
	repo      *mockSaleRepo
	carts     *mockCartStore
	stock     *mockStockRepo
	settings  *mockSettings
	publisher *mockPublisher
	printer   *mockPrinter
	uc        checkout.UseCase
}

func newFixture(crt *cart.Cart, rows map[string][]model.Inventory, policy checkout.SizeMatchPolicy) *fixture {
	f := &fixture{
		repo:  &mockSaleRepo{},
		carts: &mockCartStore{cart: crt},
		stock: &mockStockRepo{rows: rows},
		settings: &mockSettings{snapshot: settings.Settings{
			TaxRate:       15,
			PrintReceipts: true,
			TerminalName:  "Register-01",
		}},
		publisher: &mockPublisher{},
		printer:   &mockPrinter{printed: make(chan receipt.Document, 1)},
	}
	f.uc = NewCheckoutUseCase(
		f.repo, f.carts, f.stock, &mockLocationRepo{}, f.settings,
		f.publisher, f.printer, nil, policy, logger.NewNop(),
	)
	return f
}

func operator() auth.Operator {
	return auth.Operator{ID: "staff-1", Name: "Thandi", Role: model.RoleCashier, LocationID: "loc-1"}
}

func twoLineCart() *cart.Cart {
	crt := cart.New("till-1")
	crt.Lines = []cart.Line{
		{ProductID: "p-shirt", Name: "Shirt", Price: 250, Qty: 2, SelectedSize: strPtr("M"), Sizes: []string{"S", "M", "L"}, Stock: 8},
		{ProductID: "p-mug", Name: "Mug", Price: 80, Qty: 1, Stock: 4},
	}
	return crt
}

func stockFor(shirtQty, mugQty int) map[string][]model.Inventory {
	return map[string][]model.Inventory{
		"p-shirt": {
			{ID: "inv-shirt-s", ProductID: "p-shirt", LocationID: "loc-1", SizeName: strPtr("S"), Quantity: 4, Price: 250},
			{ID: "inv-shirt-m", ProductID: "p-shirt", LocationID: "loc-1", SizeName: strPtr("M"), Quantity: shirtQty, Price: 250},
		},
		"p-mug": {
			{ID: "inv-mug", ProductID: "p-mug", LocationID: "loc-1", Quantity: mugQty, Price: 80},
		},
	}
}

func TestSubmit_CommitsOrderLinesAndDecrements(t *testing.T) {
	f := newFixture(twoLineCart(), stockFor(5, 3), checkout.SizeMatchFallback)

	result, err := f.uc.Submit(context.Background(), &dto.SubmitInput{
		Terminal:      "till-1",
		PaymentMethod: dto.PaymentCard,
		Operator:      operator(),
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "completed", result.Status)
	assert.InDelta(t, 580.0, result.Total, 0.001) // 2*250 + 80
	assert.True(t, result.Printed)

	require.NotNil(t, f.repo.order)
	assert.Equal(t, model.OrderStatusPOSComplete, f.repo.order.Status)
	assert.Equal(t, model.FulfillmentPickup, f.repo.order.FulfillmentType)
	assert.Equal(t, dto.PaymentCard, f.repo.order.PaymentMethod)
	require.NotNil(t, f.repo.order.PickupLocationID)
	assert.Equal(t, "loc-1", *f.repo.order.PickupLocationID)
	require.NotNil(t, f.repo.order.CashierID)
	assert.Equal(t, "staff-1", *f.repo.order.CashierID)

	require.Len(t, f.repo.lines, 2)
	assert.Equal(t, "Shirt", f.repo.lines[0].ProductName)
	assert.InDelta(t, 250.0, f.repo.lines[0].PriceAtPurchase, 0.001)

	require.Len(t, f.repo.decrements, 2)
	assert.Equal(t, "inv-shirt-m", f.repo.decrements[0].InventoryID)
	assert.Equal(t, 2, f.repo.decrements[0].Quantity)
	assert.Equal(t, "inv-mug", f.repo.decrements[1].InventoryID)
	assert.Equal(t, 1, f.repo.decrements[1].Quantity)

	mv := f.repo.decrements[0].Movement
	assert.Equal(t, "sale", mv.MovementType)
	assert.Equal(t, -2, mv.QuantityChange)
	require.NotNil(t, mv.ReferenceID)
	assert.Equal(t, f.repo.order.ID, *mv.ReferenceID)

	assert.True(t, f.carts.cleared)
}

func TestSubmit_PublishesTerminalSourcedEvent(t *testing.T) {
	f := newFixture(twoLineCart(), stockFor(5, 3), checkout.SizeMatchFallback)

	_, err := f.uc.Submit(context.Background(), &dto.SubmitInput{
		Terminal:      "till-1",
		PaymentMethod: dto.PaymentCash,
		Operator:      operator(),
	})
	require.NoError(t, err)

	require.Len(t, f.publisher.published, 1)
	var evt event.OrderCreated
	require.NoError(t, json.Unmarshal(f.publisher.published[0], &evt))
	assert.Equal(t, event.TypeOrderCreated, evt.EventType)
	assert.Equal(t, event.SourceTerminal, evt.Source)
	assert.Equal(t, "loc-1", evt.Payload.LocationID)
	require.Len(t, evt.Payload.Items, 2)
	assert.Equal(t, "p-shirt", evt.Payload.Items[0].ProductID)
	assert.Equal(t, 2, evt.Payload.Items[0].Quantity)
}

func TestSubmit_PrintsTaxInclusiveReceipt(t *testing.T) {
	f := newFixture(twoLineCart(), stockFor(5, 3), checkout.SizeMatchFallback)

	result, err := f.uc.Submit(context.Background(), &dto.SubmitInput{
		Terminal:      "till-1",
		PaymentMethod: dto.PaymentCard,
		Operator:      operator(),
	})
	require.NoError(t, err)
	assert.True(t, result.Printed)

	doc := <-f.printer.printed
	assert.Equal(t, "Main Street Store", doc.StoreName)
	assert.Equal(t, "Thandi", doc.CashierName)
	assert.InDelta(t, 580.0, doc.Total, 0.001)
	assert.InDelta(t, doc.Total, doc.Subtotal+doc.Tax, 0.001)
}

func TestSubmit_PrintingDisabledBySetting(t *testing.T) {
	f := newFixture(twoLineCart(), stockFor(5, 3), checkout.SizeMatchFallback)
	f.settings.snapshot.PrintReceipts = false

	result, err := f.uc.Submit(context.Background(), &dto.SubmitInput{
		Terminal:      "till-1",
		PaymentMethod: dto.PaymentCard,
		Operator:      operator(),
	})
	require.NoError(t, err)
	assert.False(t, result.Printed)
	assert.Empty(t, f.printer.printed)
}

func TestSubmit_EmptyCartRejected(t *testing.T) {
	f := newFixture(cart.New("till-1"), nil, checkout.SizeMatchFallback)

	_, err := f.uc.Submit(context.Background(), &dto.SubmitInput{
		Terminal:      "till-1",
		PaymentMethod: dto.PaymentCard,
		Operator:      operator(),
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.Zero(t, f.repo.calls)
}

func TestSubmit_MissingSizeSelectionRejected(t *testing.T) {
	crt := cart.New("till-1")
	crt.Lines = []cart.Line{
		{ProductID: "p-shirt", Name: "Shirt", Price: 250, Qty: 1, Sizes: []string{"S", "M"}, Stock: 8},
	}
	f := newFixture(crt, stockFor(5, 3), checkout.SizeMatchFallback)

	_, err := f.uc.Submit(context.Background(), &dto.SubmitInput{
		Terminal:      "till-1",
		PaymentMethod: dto.PaymentCard,
		Operator:      operator(),
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.Contains(t, apperrors.Message(err), "Shirt")
	assert.Zero(t, f.repo.calls)
}

func TestSubmit_UnknownPaymentMethodRejected(t *testing.T) {
	f := newFixture(twoLineCart(), stockFor(5, 3), checkout.SizeMatchFallback)

	_, err := f.uc.Submit(context.Background(), &dto.SubmitInput{
		Terminal:      "till-1",
		PaymentMethod: "barter",
		Operator:      operator(),
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestSubmit_OperatorWithoutStoreRejected(t *testing.T) {
	f := newFixture(twoLineCart(), stockFor(5, 3), checkout.SizeMatchFallback)

	op := operator()
	op.LocationID = ""
	_, err := f.uc.Submit(context.Background(), &dto.SubmitInput{
		Terminal:      "till-1",
		PaymentMethod: dto.PaymentCard,
		Operator:      op,
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.Zero(t, f.repo.calls)
}

func TestSubmit_InsufficientStockBeforeCommit(t *testing.T) {
	// Shirt size M has 1 on hand but the cart asks for 2.
	f := newFixture(twoLineCart(), stockFor(1, 3), checkout.SizeMatchFallback)

	_, err := f.uc.Submit(context.Background(), &dto.SubmitInput{
		Terminal:      "till-1",
		PaymentMethod: dto.PaymentCard,
		Operator:      operator(),
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	assert.Contains(t, apperrors.Message(err), "Shirt")

	assert.Zero(t, f.repo.calls)
	assert.False(t, f.carts.cleared)
	assert.Empty(t, f.publisher.published)
}

func TestSubmit_RepositoryConflictLeavesCartIntact(t *testing.T) {
	f := newFixture(twoLineCart(), stockFor(5, 3), checkout.SizeMatchFallback)
	f.repo.submitErr = apperrors.Conflict("insufficient stock for Mug")

	_, err := f.uc.Submit(context.Background(), &dto.SubmitInput{
		Terminal:      "till-1",
		PaymentMethod: dto.PaymentCard,
		Operator:      operator(),
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

	assert.False(t, f.carts.cleared)
	assert.Empty(t, f.publisher.published)
	assert.Empty(t, f.printer.printed)
}

func TestSubmit_StrictPolicyRejectsUnmatchedSize(t *testing.T) {
	crt := cart.New("till-1")
	crt.Lines = []cart.Line{
		{ProductID: "p-shirt", Name: "Shirt", Price: 250, Qty: 1, SelectedSize: strPtr("XXL"), Sizes: []string{"S", "M", "XXL"}, Stock: 8},
	}
	f := newFixture(crt, stockFor(5, 3), checkout.SizeMatchStrict)

	_, err := f.uc.Submit(context.Background(), &dto.SubmitInput{
		Terminal:      "till-1",
		PaymentMethod: dto.PaymentCard,
		Operator:      operator(),
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.Zero(t, f.repo.calls)
}

func TestSubmit_FallbackPolicyChargesFirstRow(t *testing.T) {
	crt := cart.New("till-1")
	crt.Lines = []cart.Line{
		{ProductID: "p-shirt", Name: "Shirt", Price: 250, Qty: 1, SelectedSize: strPtr("XXL"), Sizes: []string{"S", "M", "XXL"}, Stock: 8},
	}
	f := newFixture(crt, stockFor(5, 3), checkout.SizeMatchFallback)

	_, err := f.uc.Submit(context.Background(), &dto.SubmitInput{
		Terminal:      "till-1",
		PaymentMethod: dto.PaymentCard,
		Operator:      operator(),
	})
	require.NoError(t, err)

	require.Len(t, f.repo.decrements, 1)
	assert.Equal(t, "inv-shirt-s", f.repo.decrements[0].InventoryID)
}
