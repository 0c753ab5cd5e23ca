package model

const LocationTypeStore = "store"

type Location struct {
	BaseModel
	Name     string `db:"name" json:"name"`
	Type     string `db:"type" json:"type"` // 'store', 'warehouse'
	IsActive bool   `db:"is_active" json:"is_active"`
}
