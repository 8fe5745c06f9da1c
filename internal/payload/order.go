package payload

import "github.com/romsper/testing-playground-client/internal/model"

type CreateOrderRequest struct {
	UserID   int64                `json:"userId"   validate:"required"`
	Products []CreateOrderProduct `json:"products" validate:"required,min=1,dive"`
}

type CreateOrderProduct struct {
	ID int64 `json:"id" validate:"required"`
}

type OrderResponse struct {
	ID          int64             `json:"id"`
	UserID      int64             `json:"userId"`
	OrderStatus string            `json:"orderStatus"`
	Products    []ProductResponse `json:"products"`
	TotalAmount float64           `json:"totalAmount"`
	CreatedAt   int64             `json:"createdAt"`
	UpdatedAt   int64             `json:"updatedAt"`
}

func (r OrderResponse) Order() model.Order {
	products := make([]model.Product, 0, len(r.Products))
	for _, p := range r.Products {
		products = append(products, p.Product())
	}

	return model.Order{
		ID:          r.ID,
		UserID:      r.UserID,
		OrderStatus: r.OrderStatus,
		Products:    products,
		TotalAmount: r.TotalAmount,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
