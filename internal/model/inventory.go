package model

import "time"

// Inventory is a stock row scoped to one product, one location and
// optionally one size variant. A product without variants has exactly one
// row per location. Quantity is a non-negative integer; the database
// enforces this via the conditional decrement used at checkout.
type Inventory struct {
	ID         string    `db:"id" json:"id"`
	ProductID  string    `db:"product_id" json:"product_id"`
	LocationID string    `db:"location_id" json:"location_id"`
	SizeName   *string   `db:"size_name" json:"size_name"`
	Quantity   int       `db:"quantity" json:"quantity"`
	Price      float64   `db:"price" json:"price"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

type InventoryMovement struct {
	ID             string    `db:"id" json:"id"`
	InventoryID    string    `db:"inventory_id" json:"inventory_id"`
	ProductID      string    `db:"product_id" json:"product_id"`
	LocationID     string    `db:"location_id" json:"location_id"`
	MovementType   string    `db:"movement_type" json:"movement_type"` // 'sale', 'adjustment', 'return'
	QuantityChange int       `db:"quantity_change" json:"quantity_change"`
	QuantityBefore int       `db:"quantity_before" json:"quantity_before"`
	QuantityAfter  int       `db:"quantity_after" json:"quantity_after"`
	ReferenceType  *string   `db:"reference_type" json:"reference_type"`
	ReferenceID    *string   `db:"reference_id" json:"reference_id"`
	Notes          string    `db:"notes" json:"notes"`
	CreatedBy      *string   `db:"created_by" json:"created_by"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
