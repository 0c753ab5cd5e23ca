package dto

type CreateProductInput struct {
	SKU         string   `json:"sku"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Sizes       []string `json:"sizes"`
	ImageURL    string   `json:"image_url"`
}

type UpdateProductInput struct {
	ID          string   `json:"-"`
	SKU         string   `json:"sku"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Sizes       []string `json:"sizes"`
	ImageURL    string   `json:"image_url"`
	IsActive    bool     `json:"is_active"`
}
