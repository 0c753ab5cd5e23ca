package checkout

import (
	"context"

	"github.com/fekuna/omnipos-terminal-service/internal/model"
)

// Decrement is one stock deduction within a sale. Lines resolving to the
// same inventory row are summed into a single Decrement before submit.
// Movement is a template; the repository fills QuantityBefore/QuantityAfter
// from the row state inside the transaction.
type Decrement struct {
	InventoryID string
	ProductName string
	Quantity    int
	Movement    model.InventoryMovement
}

// Repository commits a sale. The order row, its lines, every conditional
// stock decrement and the movement audit rows succeed or fail as one
// transaction; a failed decrement surfaces as a Conflict error and nothing
// is written.
type Repository interface {
	SubmitSale(ctx context.Context, order *model.Order, lines []model.OrderLine, decrements []Decrement) error
}
