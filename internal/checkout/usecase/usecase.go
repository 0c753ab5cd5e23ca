package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-terminal-service/internal/cart"
	"github.com/fekuna/omnipos-terminal-service/internal/checkout"
	"github.com/fekuna/omnipos-terminal-service/internal/checkout/dto"
	"github.com/fekuna/omnipos-terminal-service/internal/event"
	"github.com/fekuna/omnipos-terminal-service/internal/inventory"
	"github.com/fekuna/omnipos-terminal-service/internal/location"
	"github.com/fekuna/omnipos-terminal-service/internal/model"
	"github.com/fekuna/omnipos-terminal-service/internal/receipt"
	"github.com/fekuna/omnipos-terminal-service/internal/settings"
	"github.com/fekuna/omnipos-terminal-service/pkg/apperrors"
	"github.com/fekuna/omnipos-terminal-service/pkg/cache"
	"github.com/fekuna/omnipos-terminal-service/pkg/logger"
)

// Publisher emits sale events on the orders topic.
type Publisher interface {
	Publish(ctx context.Context, key, value []byte) error
}

type checkoutUseCase struct {
	repo      checkout.Repository
	carts     cart.Store
	stock     inventory.Repository
	locations location.Repository
	settings  settings.UseCase
	publisher Publisher
	printer   receipt.Printer
	cache     *cache.RedisClient
	policy    checkout.SizeMatchPolicy
	logger    logger.ZapLogger
}

func NewCheckoutUseCase(
	repo checkout.Repository,
	carts cart.Store,
	stock inventory.Repository,
	locations location.Repository,
	settingsUC settings.UseCase,
	publisher Publisher,
	printer receipt.Printer,
	redis *cache.RedisClient,
	policy checkout.SizeMatchPolicy,
	log logger.ZapLogger,
) checkout.UseCase {
	return &checkoutUseCase{
		repo:      repo,
		carts:     carts,
		stock:     stock,
		locations: locations,
		settings:  settingsUC,
		publisher: publisher,
		printer:   printer,
		cache:     redis,
		policy:    policy,
		logger:    log,
	}
}

// Submit commits one sale: order row, order lines, conditional stock
// decrements and movement audit rows in a single transaction. On any
// failure nothing is written and the cart is kept so the cashier can retry
// the whole attempt.
func (uc *checkoutUseCase) Submit(ctx context.Context, input *dto.SubmitInput) (*dto.SubmitResult, error) {
	if input.PaymentMethod != dto.PaymentCard && input.PaymentMethod != dto.PaymentCash {
		return nil, apperrors.Validation("unknown payment method %q", input.PaymentMethod)
	}
	if input.Operator.LocationID == "" {
		return nil, apperrors.Validation("operator has no assigned store")
	}

	crt, err := uc.carts.Get(ctx, input.Terminal)
	if err != nil {
		return nil, apperrors.Transport(err, "failed to load cart")
	}
	if len(crt.Lines) == 0 {
		return nil, apperrors.Validation("cart is empty")
	}
	if missing := crt.LinesMissingSize(); len(missing) > 0 {
		return nil, apperrors.Validation("select a size for %s", missing[0].Name)
	}

	locationID := input.Operator.LocationID
	now := time.Now()
	orderID := uuid.New().String()

	order := &model.Order{
		ID:               orderID,
		TotalAmount:      crt.Total(),
		Status:           model.OrderStatusPOSComplete,
		FulfillmentType:  model.FulfillmentPickup,
		PaymentMethod:    input.PaymentMethod,
		PickupLocationID: &locationID,
		CreatedAt:        now,
	}
	if input.Operator.ID != "" {
		cashierID := input.Operator.ID
		order.CashierID = &cashierID
	}

	lines := make([]model.OrderLine, 0, len(crt.Lines))
	sums := map[string]int{}       // inventory id -> summed quantity
	names := map[string]string{}   // inventory id -> product name for errors
	rowsByID := map[string]*model.Inventory{}
	var decrementOrder []string

	for _, line := range crt.Lines {
		lines = append(lines, model.OrderLine{
			ID:              uuid.New().String(),
			OrderID:         orderID,
			ProductID:       line.ProductID,
			ProductName:     line.Name,
			Quantity:        line.Qty,
			PriceAtPurchase: line.Price, // Frozen add-time price
		})

		rows, err := uc.stock.ListByProduct(ctx, line.ProductID, locationID)
		if err != nil {
			return nil, apperrors.Transport(err, "failed to load inventory")
		}

		inv, err := checkout.ResolveInventory(line, rows, uc.policy)
		if err != nil {
			return nil, err
		}

		if _, seen := sums[inv.ID]; !seen {
			decrementOrder = append(decrementOrder, inv.ID)
			rowsByID[inv.ID] = inv
			names[inv.ID] = line.Name
		}
		sums[inv.ID] += line.Qty
	}

	decrements := make([]checkout.Decrement, 0, len(decrementOrder))
	for _, invID := range decrementOrder {
		qty := sums[invID]
		inv := rowsByID[invID]

		// Advisory pre-check against the last read; the transaction's
		// conditional update is the authoritative one.
		if inv.Quantity-qty < 0 {
			return nil, apperrors.Conflict("insufficient stock for %s", names[invID])
		}

		refType := "sale"
		var createdBy *string
		if input.Operator.ID != "" {
			id := input.Operator.ID
			createdBy = &id
		}

		decrements = append(decrements, checkout.Decrement{
			InventoryID: invID,
			ProductName: names[invID],
			Quantity:    qty,
			Movement: model.InventoryMovement{
				ID:             uuid.New().String(),
				InventoryID:    invID,
				ProductID:      inv.ProductID,
				LocationID:     locationID,
				MovementType:   "sale",
				QuantityChange: -qty,
				ReferenceType:  &refType,
				ReferenceID:    &orderID,
				Notes:          "POS sale",
				CreatedBy:      createdBy,
				CreatedAt:      now,
			},
		})
	}

	if err := uc.repo.SubmitSale(ctx, order, lines, decrements); err != nil {
		return nil, err
	}

	uc.publishOrderCreated(ctx, order, crt)
	go uc.invalidateProductCache(context.Background())

	if err := uc.carts.Clear(ctx, input.Terminal); err != nil {
		// Sale is committed; a stale cart is an annoyance, not a failure.
		uc.logger.Warn("failed to clear cart after sale", zap.String("terminal", input.Terminal), zap.Error(err))
	}

	printed := uc.printReceipt(input, order, crt)

	uc.logger.Info("sale complete",
		zap.String("order_id", orderID),
		zap.String("terminal", input.Terminal),
		zap.Float64("total", order.TotalAmount),
	)

	return &dto.SubmitResult{
		OrderID: orderID,
		Total:   order.TotalAmount,
		Status:  "completed",
		Printed: printed,
	}, nil
}

func (uc *checkoutUseCase) publishOrderCreated(ctx context.Context, order *model.Order, crt *cart.Cart) {
	if uc.publisher == nil {
		return
	}

	items := make([]event.OrderItem, len(crt.Lines))
	for i, line := range crt.Lines {
		items[i] = event.OrderItem{
			ProductID: line.ProductID,
			SizeName:  line.SelectedSize,
			Quantity:  line.Qty,
		}
	}

	evt := event.OrderCreated{
		EventID:   uuid.New().String(),
		EventType: event.TypeOrderCreated,
		Source:    event.SourceTerminal,
		Payload: event.OrderPayload{
			ID:         order.ID,
			LocationID: *order.PickupLocationID,
			Total:      order.TotalAmount,
			Items:      items,
		},
		Timestamp: time.Now(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		uc.logger.Error("failed to marshal order event", zap.Error(err))
		return
	}
	if err := uc.publisher.Publish(ctx, []byte(order.ID), data); err != nil {
		uc.logger.Error("failed to publish order event", zap.String("order_id", order.ID), zap.Error(err))
	}
}

func (uc *checkoutUseCase) printReceipt(input *dto.SubmitInput, order *model.Order, crt *cart.Cart) bool {
	if uc.printer == nil {
		return false
	}

	s, err := uc.settings.Get(context.Background(), input.Terminal)
	if err != nil {
		uc.logger.Warn("failed to load settings for receipt", zap.Error(err))
		return false
	}
	if !s.PrintReceipts {
		return false
	}

	storeName := input.StoreName
	if storeName == "" {
		if loc, err := uc.locations.FindByID(context.Background(), input.Operator.LocationID); err == nil && loc != nil {
			storeName = loc.Name
		}
	}
	if storeName == "" {
		storeName = "Store"
	}
	cashierName := input.Operator.Name
	if cashierName == "" {
		cashierName = "Staff"
	}

	items := make([]receipt.Item, len(crt.Lines))
	for i, line := range crt.Lines {
		items[i] = receipt.Item{Name: line.Name, Price: line.Price, Qty: line.Qty}
	}

	doc := receipt.Format(order.ID, order.TotalAmount, items, storeName, cashierName, s.TaxRate, time.Now())

	go func() {
		if err := uc.printer.Print(context.Background(), doc); err != nil {
			uc.logger.Error("failed to print receipt", zap.String("order_id", order.ID), zap.Error(err))
		}
	}()

	return true
}

func (uc *checkoutUseCase) invalidateProductCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	keys, err := uc.cache.Client.Keys(ctx, "products:list:*").Result()
	if err == nil && len(keys) > 0 {
		uc.cache.Client.Del(ctx, keys...)
	}
}
