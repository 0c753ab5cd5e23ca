package cart

import "context"

type UseCase interface {
	GetCart(ctx context.Context, terminal string) (*Cart, error)
	// AddProduct snapshots the product's current price and stock for the
	// terminal's location and adds one unit to the cart.
	AddProduct(ctx context.Context, terminal, productID, locationID string) (*Cart, error)
	// AddBySKU backs the barcode scanner path.
	AddBySKU(ctx context.Context, terminal, sku, locationID string) (*Cart, error)
	UpdateQuantity(ctx context.Context, terminal, productID string, qty int) (*Cart, error)
	SelectSize(ctx context.Context, terminal, productID, size string) (*Cart, error)
	RemoveProduct(ctx context.Context, terminal, productID string) (*Cart, error)
	ClearCart(ctx context.Context, terminal string) error
}
