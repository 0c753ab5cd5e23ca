package model

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleCashier = "cashier"
)

type Profile struct {
	BaseModel
	Email              string  `db:"email" json:"email"`
	FullName           string  `db:"full_name" json:"full_name"`
	Role               string  `db:"role" json:"role"`
	AssignedLocationID *string `db:"assigned_location_id" json:"assigned_location_id"`
	PasswordHash       string  `db:"password_hash" json:"-"`
	IsActive           bool    `db:"is_active" json:"is_active"`
}
