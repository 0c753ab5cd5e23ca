package inventory

import (
	"context"

	"github.com/fekuna/omnipos-terminal-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-terminal-service/internal/model"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*model.Inventory, error)
	// ListByProduct returns the stock rows for one product at one location,
	// size-less rows first. The checkout resolver depends on this ordering.
	ListByProduct(ctx context.Context, productID, locationID string) ([]model.Inventory, error)
	FindAll(ctx context.Context, filters *dto.InventoryFilters) ([]model.Inventory, int, error)

	Upsert(ctx context.Context, inv *model.Inventory) error

	// DecrementConditional applies "quantity = quantity - N WHERE quantity >= N"
	// and reports whether a row was updated. The quantity after the update is
	// returned so callers can audit the movement.
	DecrementConditional(ctx context.Context, id string, qty int) (after int, ok bool, err error)

	LogMovement(ctx context.Context, movement *model.InventoryMovement) error
	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.InventoryMovement, int, error)

	// AdjustStockWithMovement writes the new quantity and its audit row in
	// one transaction.
	AdjustStockWithMovement(ctx context.Context, inv *model.Inventory, movement *model.InventoryMovement) error
}
