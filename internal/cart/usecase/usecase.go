package usecase

import (
	"context"
	"strings"

	"github.com/fekuna/omnipos-terminal-service/internal/cart"
	"github.com/fekuna/omnipos-terminal-service/internal/inventory"
	"github.com/fekuna/omnipos-terminal-service/internal/model"
	"github.com/fekuna/omnipos-terminal-service/internal/product"
	"github.com/fekuna/omnipos-terminal-service/pkg/apperrors"
	"github.com/fekuna/omnipos-terminal-service/pkg/logger"
)

type cartUseCase struct {
	store    cart.Store
	products product.Repository
	stock    inventory.Repository
	logger   logger.ZapLogger
}

func NewCartUseCase(store cart.Store, products product.Repository, stock inventory.Repository, log logger.ZapLogger) cart.UseCase {
	return &cartUseCase{
		store:    store,
		products: products,
		stock:    stock,
		logger:   log,
	}
}

func (uc *cartUseCase) GetCart(ctx context.Context, terminal string) (*cart.Cart, error) {
	c, err := uc.store.Get(ctx, terminal)
	if err != nil {
		return nil, apperrors.Transport(err, "failed to load cart")
	}
	return c, nil
}

func (uc *cartUseCase) AddProduct(ctx context.Context, terminal, productID, locationID string) (*cart.Cart, error) {
	p, err := uc.products.FindByID(ctx, productID)
	if err != nil {
		return nil, apperrors.Transport(err, "failed to load product")
	}
	return uc.add(ctx, terminal, p, locationID)
}

func (uc *cartUseCase) AddBySKU(ctx context.Context, terminal, sku, locationID string) (*cart.Cart, error) {
	p, err := uc.products.FindBySKU(ctx, strings.TrimSpace(sku))
	if err != nil {
		return nil, apperrors.Transport(err, "failed to load product")
	}
	if p == nil {
		return nil, apperrors.Validation("product not found: %s", sku)
	}
	return uc.add(ctx, terminal, p, locationID)
}

func (uc *cartUseCase) add(ctx context.Context, terminal string, p *model.Product, locationID string) (*cart.Cart, error) {
	if p == nil {
		return nil, apperrors.Validation("product not found")
	}
	if locationID == "" {
		return nil, apperrors.Validation("location is required")
	}

	rows, err := uc.stock.ListByProduct(ctx, p.ID, locationID)
	if err != nil {
		return nil, apperrors.Transport(err, "failed to load inventory")
	}
	if len(rows) == 0 {
		return nil, apperrors.Validation("no stock record for %s at this location", p.Name)
	}

	totalStock := 0
	for _, inv := range rows {
		totalStock += inv.Quantity
	}

	c, err := uc.store.Get(ctx, terminal)
	if err != nil {
		return nil, apperrors.Transport(err, "failed to load cart")
	}

	line := cart.Line{
		ProductID:    p.ID,
		Name:         p.Name,
		SKU:          p.SKU,
		Price:        rows[0].Price, // Price snapshot, frozen until checkout
		Qty:          1,
		Sizes:        p.Sizes,
		SelectedSize: autoSelectSize(p.Sizes, rows),
		Stock:        totalStock,
	}

	if err := c.AddLine(line); err != nil {
		return nil, err
	}
	if err := uc.store.Save(ctx, c); err != nil {
		return nil, apperrors.Transport(err, "failed to save cart")
	}
	return c, nil
}

// autoSelectSize mirrors the terminal UI: when a sized product has exactly
// one size with stock on hand, that size is chosen for the cashier.
func autoSelectSize(sizes []string, rows []model.Inventory) *string {
	if len(sizes) == 0 {
		return nil
	}

	var available []string
	for _, size := range sizes {
		want := strings.TrimSpace(size)
		for _, inv := range rows {
			if inv.SizeName != nil && strings.TrimSpace(*inv.SizeName) == want && inv.Quantity > 0 {
				available = append(available, size)
				break
			}
		}
	}

	if len(available) == 1 {
		s := available[0]
		return &s
	}
	return nil
}

func (uc *cartUseCase) UpdateQuantity(ctx context.Context, terminal, productID string, qty int) (*cart.Cart, error) {
	return uc.mutate(ctx, terminal, func(c *cart.Cart) error {
		return c.UpdateQty(productID, qty)
	})
}

func (uc *cartUseCase) SelectSize(ctx context.Context, terminal, productID, size string) (*cart.Cart, error) {
	return uc.mutate(ctx, terminal, func(c *cart.Cart) error {
		return c.SelectSize(productID, size)
	})
}

func (uc *cartUseCase) RemoveProduct(ctx context.Context, terminal, productID string) (*cart.Cart, error) {
	return uc.mutate(ctx, terminal, func(c *cart.Cart) error {
		c.RemoveLine(productID)
		return nil
	})
}

func (uc *cartUseCase) ClearCart(ctx context.Context, terminal string) error {
	if err := uc.store.Clear(ctx, terminal); err != nil {
		return apperrors.Transport(err, "failed to clear cart")
	}
	return nil
}

func (uc *cartUseCase) mutate(ctx context.Context, terminal string, fn func(*cart.Cart) error) (*cart.Cart, error) {
	c, err := uc.store.Get(ctx, terminal)
	if err != nil {
		return nil, apperrors.Transport(err, "failed to load cart")
	}
	if err := fn(c); err != nil {
		return nil, err
	}
	if err := uc.store.Save(ctx, c); err != nil {
		return nil, apperrors.Transport(err, "failed to save cart")
	}
	return c, nil
}
