package product

import (
	"context"

	"github.com/fekuna/omnipos-terminal-service/internal/model"
	"github.com/fekuna/omnipos-terminal-service/internal/product/dto"
)

type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindBySKU(ctx context.Context, sku string) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	// FindAllWithInventory returns active products carrying their inventory
	// rows for one location. Backs the terminal's product grid.
	FindAllWithInventory(ctx context.Context, locationID string) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id string) error

	IsSKUUnique(ctx context.Context, sku, excludeID string) (bool, error)
}
