package checkout

import (
	"strings"

	"github.com/fekuna/omnipos-terminal-service/internal/cart"
	"github.com/fekuna/omnipos-terminal-service/internal/model"
	"github.com/fekuna/omnipos-terminal-service/pkg/apperrors"
)

// SizeMatchPolicy decides what happens when a cart line's selected size has
// no matching stock row.
type SizeMatchPolicy int

const (
	// SizeMatchFallback charges the first stock row when the selected size
	// has no match. Historical terminal behavior; can silently decrement
	// the wrong variant.
	SizeMatchFallback SizeMatchPolicy = iota
	// SizeMatchStrict rejects an unmatched size selection.
	SizeMatchStrict
)

// ResolveInventory maps a cart line to the single stock row whose quantity
// the sale must decrement. Size labels compare case-sensitively after
// trimming whitespace on both sides.
func ResolveInventory(line cart.Line, rows []model.Inventory, policy SizeMatchPolicy) (*model.Inventory, error) {
	if len(rows) == 0 {
		return nil, apperrors.Validation("missing stock record for %s", line.Name)
	}

	if line.SelectedSize != nil {
		want := strings.TrimSpace(*line.SelectedSize)
		if want != "" {
			for i := range rows {
				if rows[i].SizeName != nil && strings.TrimSpace(*rows[i].SizeName) == want {
					return &rows[i], nil
				}
			}
			if policy == SizeMatchStrict {
				return nil, apperrors.Validation("no stock record for %s in size %s", line.Name, want)
			}
		}
	}

	return &rows[0], nil
}
