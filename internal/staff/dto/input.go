package dto

type CreateStaffInput struct {
	Email              string `json:"email"`
	FullName           string `json:"full_name"`
	Role               string `json:"role"`
	Password           string `json:"password"`
	AssignedLocationID string `json:"assigned_location_id"`
}

type UpdateStaffInput struct {
	ID                 string `json:"-"`
	FullName           string `json:"full_name"`
	Role               string `json:"role"`
	AssignedLocationID string `json:"assigned_location_id"`
	IsActive           bool   `json:"is_active"`
}
