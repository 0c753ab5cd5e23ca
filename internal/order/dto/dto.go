package dto

type OrderFilter struct {
	LocationID string
	Status     string
	Page       int
	Limit      int
}

func (f *OrderFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}
