package dto

import "time"

type InventoryFilters struct {
	ProductID  string
	LocationID string
	Page       int
	PageSize   int
}

type MovementFilters struct {
	ProductID    string
	LocationID   string
	MovementType string
	StartDate    *time.Time
	EndDate      *time.Time
	Page         int
	PageSize     int
}
