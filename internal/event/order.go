// Package event holds the wire shapes published on the orders topic. The
// terminal publishes OrderCreated after each completed sale; the inventory
// listener consumes the same shape from other sales channels.
package event

import "time"

const (
	TypeOrderCreated = "OrderCreated"

	// SourceTerminal marks events produced by this service. The inventory
	// listener skips them: terminal sales decrement stock inside the
	// checkout transaction, not through the event path.
	SourceTerminal = "pos_terminal"
)

type OrderCreated struct {
	EventID   string       `json:"event_id"`
	EventType string       `json:"event_type"`
	Source    string       `json:"source"`
	Payload   OrderPayload `json:"payload"`
	Timestamp time.Time    `json:"timestamp"`
}

type OrderPayload struct {
	ID         string      `json:"id"`
	LocationID string      `json:"location_id"`
	Total      float64     `json:"total"`
	Items      []OrderItem `json:"items"`
}

type OrderItem struct {
	ProductID string  `json:"product_id"`
	SizeName  *string `json:"size_name"`
	Quantity  int     `json:"quantity"`
}
