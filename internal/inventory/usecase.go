package inventory

import (
	"context"

	"github.com/fekuna/omnipos-terminal-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-terminal-service/internal/model"
)

type UseCase interface {
	GetProductInventory(ctx context.Context, productID, locationID string) ([]model.Inventory, error)
	ListInventory(ctx context.Context, filters *dto.InventoryFilters) ([]model.Inventory, int, error)
	AdjustInventory(ctx context.Context, input *dto.AdjustInventoryInput) (*model.Inventory, error)
	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.InventoryMovement, int, error)
}
