// Package cart holds the terminal-local shopping cart. Lines carry a price
// snapshot taken when the product was added; checkout charges that price
// even if the catalog moves later.
package cart

import (
	"strings"
	"time"

	"github.com/fekuna/omnipos-terminal-service/pkg/apperrors"
)

type Line struct {
	ProductID    string   `json:"product_id"`
	Name         string   `json:"name"`
	SKU          string   `json:"sku"`
	Price        float64  `json:"price"` // Snapshot from add-time, not re-fetched
	Qty          int      `json:"qty"`
	SelectedSize *string  `json:"selected_size"`
	Sizes        []string `json:"sizes"`
	Stock        int      `json:"stock"` // Last-observed total, advisory only
}

type Cart struct {
	Terminal  string    `json:"terminal"`
	Lines     []Line    `json:"lines"`
	UpdatedAt time.Time `json:"updated_at"`
}

func New(terminal string) *Cart {
	return &Cart{Terminal: terminal, UpdatedAt: time.Now()}
}

func (c *Cart) Total() float64 {
	total := 0.0
	for _, l := range c.Lines {
		total += l.Price * float64(l.Qty)
	}
	return total
}

func (c *Cart) Find(productID string) *Line {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return &c.Lines[i]
		}
	}
	return nil
}

// AddLine merges by product: adding a product already in the cart bumps its
// quantity by one, capped at the last-observed stock.
func (c *Cart) AddLine(line Line) error {
	if line.Qty < 1 {
		line.Qty = 1
	}

	if existing := c.Find(line.ProductID); existing != nil {
		if existing.Qty >= existing.Stock {
			return apperrors.Validation("no more stock for %s", existing.Name)
		}
		existing.Qty++
		c.UpdatedAt = time.Now()
		return nil
	}

	if line.Stock < 1 {
		return apperrors.Validation("no stock for %s", line.Name)
	}

	c.Lines = append(c.Lines, line)
	c.UpdatedAt = time.Now()
	return nil
}

// UpdateQty sets a line's quantity, clamped to at least 1 and at most the
// last-observed stock. The stock ceiling is advisory; the checkout
// transaction is what actually enforces availability.
func (c *Cart) UpdateQty(productID string, qty int) error {
	line := c.Find(productID)
	if line == nil {
		return apperrors.Validation("product not in cart")
	}

	if qty < 1 {
		qty = 1
	}
	if line.Stock > 0 && qty > line.Stock {
		qty = line.Stock
	}

	line.Qty = qty
	c.UpdatedAt = time.Now()
	return nil
}

func (c *Cart) SelectSize(productID, size string) error {
	line := c.Find(productID)
	if line == nil {
		return apperrors.Validation("product not in cart")
	}

	size = strings.TrimSpace(size)
	found := false
	for _, s := range line.Sizes {
		if strings.TrimSpace(s) == size {
			found = true
			break
		}
	}
	if !found {
		return apperrors.Validation("size %q not available for %s", size, line.Name)
	}

	line.SelectedSize = &size
	c.UpdatedAt = time.Now()
	return nil
}

func (c *Cart) RemoveLine(productID string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			c.UpdatedAt = time.Now()
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Lines = nil
	c.UpdatedAt = time.Now()
}

// LinesMissingSize reports lines of sized products where no size was chosen.
// Checkout is blocked until it is empty.
func (c *Cart) LinesMissingSize() []Line {
	var missing []Line
	for _, l := range c.Lines {
		if len(l.Sizes) > 0 && l.SelectedSize == nil {
			missing = append(missing, l)
		}
	}
	return missing
}
