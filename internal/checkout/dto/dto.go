package dto

import "github.com/fekuna/omnipos-terminal-service/internal/auth"

// Payment methods are labels only; no processor is called.
const (
	PaymentCard = "card"
	PaymentCash = "cash"
)

type SubmitInput struct {
	Terminal      string
	PaymentMethod string
	Operator      auth.Operator
	StoreName     string
}

type SubmitResult struct {
	OrderID string  `json:"order_id"`
	Total   float64 `json:"total"`
	Status  string  `json:"status"`
	Printed bool    `json:"printed"`
}
