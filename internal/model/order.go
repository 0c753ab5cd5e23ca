package model

import "time"

const (
	OrderStatusPOSComplete = "pos_complete"

	FulfillmentPickup = "pickup"
)

type Order struct {
	ID               string      `db:"id" json:"id"`
	TotalAmount      float64     `db:"total_amount" json:"total_amount"`
	Status           string      `db:"status" json:"status"`
	FulfillmentType  string      `db:"fulfillment_type" json:"fulfillment_type"`
	PaymentMethod    string      `db:"payment_method" json:"payment_method"`
	PickupLocationID *string     `db:"pickup_location_id" json:"pickup_location_id"`
	CashierID        *string     `db:"cashier_id" json:"cashier_id"`
	CreatedAt        time.Time   `db:"created_at" json:"created_at"`
	LocationName     *string     `db:"location_name" json:"location_name,omitempty"` // Joined data
	Lines            []OrderLine `db:"-" json:"lines,omitempty"`
}

// OrderLine records the price actually charged, frozen at transaction time.
// It may differ from the catalog price later.
type OrderLine struct {
	ID              string  `db:"id" json:"id"`
	OrderID         string  `db:"order_id" json:"order_id"`
	ProductID       string  `db:"product_id" json:"product_id"`
	ProductName     string  `db:"product_name" json:"product_name"`
	Quantity        int     `db:"quantity" json:"quantity"`
	PriceAtPurchase float64 `db:"price_at_purchase" json:"price_at_purchase"`
}
