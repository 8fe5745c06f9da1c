package model

// Order represents a placed order with its line items and lifecycle status.
type Order struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	OrderStatus string    `json:"order_status"`
	Products    []Product `json:"products"`
	TotalAmount float64   `json:"total_amount"`
	CreatedAt   int64     `json:"created_at"`
	UpdatedAt   int64     `json:"updated_at"`
}
