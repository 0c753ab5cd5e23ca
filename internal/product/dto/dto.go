package dto

type ProductFilters struct {
	SearchQuery string // For name, sku search
	IsActive    *bool
	SortBy      string // name, created_at
	SortOrder   string // asc, desc
	Page        int
	PageSize    int
}
