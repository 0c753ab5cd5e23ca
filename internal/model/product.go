package model

type Product struct {
	BaseModel
	SKU         string      `db:"sku" json:"sku"`
	Name        string      `db:"name" json:"name"`
	Description *string     `db:"description" json:"description"`
	Sizes       StringList  `db:"sizes" json:"sizes"`
	ImageURL    *string     `db:"image_url" json:"image_url"`
	IsActive    bool        `db:"is_active" json:"is_active"`
	Inventory   []Inventory `db:"-" json:"inventory,omitempty"` // Joined per location, not in DB table
}

// TotalStock sums quantities across the product's loaded inventory rows.
func (p *Product) TotalStock() int {
	total := 0
	for _, inv := range p.Inventory {
		total += inv.Quantity
	}
	return total
}
