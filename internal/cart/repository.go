package cart

import "context"

// Store persists carts between requests, keyed by terminal.
type Store interface {
	Get(ctx context.Context, terminal string) (*Cart, error)
	Save(ctx context.Context, c *Cart) error
	Clear(ctx context.Context, terminal string) error
}
