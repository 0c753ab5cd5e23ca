package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-terminal-service/internal/inventory"
	"github.com/fekuna/omnipos-terminal-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-terminal-service/internal/model"
	"github.com/fekuna/omnipos-terminal-service/pkg/apperrors"
	"github.com/fekuna/omnipos-terminal-service/pkg/cache"
	"github.com/fekuna/omnipos-terminal-service/pkg/logger"
)

type inventoryUseCase struct {
	repo   inventory.Repository
	cache  *cache.RedisClient
	logger logger.ZapLogger
}

func NewInventoryUseCase(repo inventory.Repository, cache *cache.RedisClient, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

func (uc *inventoryUseCase) GetProductInventory(ctx context.Context, productID, locationID string) ([]model.Inventory, error) {
	if productID == "" || locationID == "" {
		return nil, apperrors.Validation("product and location are required")
	}
	items, err := uc.repo.ListByProduct(ctx, productID, locationID)
	if err != nil {
		return nil, apperrors.Transport(err, "failed to load inventory")
	}
	return items, nil
}

func (uc *inventoryUseCase) ListInventory(ctx context.Context, filters *dto.InventoryFilters) ([]model.Inventory, int, error) {
	return uc.repo.FindAll(ctx, filters)
}

// AdjustInventory applies a manual stock change (receiving, stock take,
// returns). Sales never come through here; they decrement atomically inside
// the checkout transaction. The redis lock serializes concurrent manual
// adjustments of the same row.
func (uc *inventoryUseCase) AdjustInventory(ctx context.Context, input *dto.AdjustInventoryInput) (*model.Inventory, error) {
	lockKey := fmt.Sprintf("lock:inventory:%s:%s", input.ProductID, input.LocationID)
	if input.SizeName != nil {
		lockKey += ":" + *input.SizeName
	}

	lockValue := uuid.New().String()
	acquired := false
	for i := 0; i < 3; i++ {
		ok, err := uc.cache.AcquireLock(ctx, lockKey, lockValue, 5*time.Second)
		if err != nil {
			uc.logger.Error("failed to acquire lock redis error", zap.Error(err))
		}
		if ok {
			acquired = true
			break
		}
		time.Sleep(100 * time.Millisecond)
	}
	if !acquired {
		return nil, apperrors.Conflict("inventory row is busy, please try again")
	}
	defer uc.cache.ReleaseLock(ctx, lockKey, lockValue)

	rows, err := uc.repo.ListByProduct(ctx, input.ProductID, input.LocationID)
	if err != nil {
		return nil, apperrors.Transport(err, "failed to load inventory")
	}

	var inv *model.Inventory
	for i := range rows {
		if sameSize(rows[i].SizeName, input.SizeName) {
			inv = &rows[i]
			break
		}
	}

	now := time.Now()
	if inv == nil {
		inv = &model.Inventory{
			ID:         uuid.New().String(),
			ProductID:  input.ProductID,
			LocationID: input.LocationID,
			SizeName:   input.SizeName,
			Quantity:   0,
			UpdatedAt:  now,
		}
	}

	quantityBefore := inv.Quantity
	inv.Quantity += input.QuantityChange
	if input.Price != nil {
		inv.Price = *input.Price
	}
	inv.UpdatedAt = now

	if inv.Quantity < 0 {
		return nil, apperrors.Conflict("insufficient stock for %s", input.ProductID)
	}

	var refID *string
	if input.ReferenceID != "" {
		refID = &input.ReferenceID
	}
	var refType *string
	if input.ReferenceType != "" {
		refType = &input.ReferenceType
	}
	var createdBy *string
	if input.UserID != "" && input.UserID != "system" {
		createdBy = &input.UserID
	}

	movementType := "adjustment"
	if input.ReferenceType == "sale" {
		movementType = "sale"
	}

	movement := &model.InventoryMovement{
		ID:             uuid.New().String(),
		InventoryID:    inv.ID,
		ProductID:      input.ProductID,
		LocationID:     input.LocationID,
		MovementType:   movementType,
		QuantityChange: input.QuantityChange,
		QuantityBefore: quantityBefore,
		QuantityAfter:  inv.Quantity,
		ReferenceType:  refType,
		ReferenceID:    refID,
		Notes:          input.Reason,
		CreatedBy:      createdBy,
		CreatedAt:      now,
	}

	if err := uc.repo.AdjustStockWithMovement(ctx, inv, movement); err != nil {
		return nil, apperrors.Transport(err, "failed to adjust stock")
	}

	return inv, nil
}

func (uc *inventoryUseCase) ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.InventoryMovement, int, error) {
	return uc.repo.ListMovements(ctx, filters)
}

func sameSize(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
