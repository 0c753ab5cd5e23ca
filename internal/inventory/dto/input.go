package dto

type AdjustInventoryInput struct {
	ProductID      string
	LocationID     string
	SizeName       *string
	QuantityChange int
	Price          *float64 // Set to also reprice the row
	Reason         string
	ReferenceID    string
	ReferenceType  string // 'manual_adjustment', 'sale', 'return'
	UserID         string
}
