package api

import (
	"context"
	"fmt"

	"github.com/romsper/testing-playground-client/internal/payload"
)

// OrderService calls the order endpoints.
type OrderService struct {
	client *Client
}

func NewOrderService(client *Client) *OrderService {
	return &OrderService{client: client}
}

func (s *OrderService) Create(ctx context.Context, req payload.CreateOrderRequest) (*payload.OrderResponse, *Error) {
	var out payload.OrderResponse
	if err := s.client.Post(ctx, "orders/create", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (s *OrderService) GetByID(ctx context.Context, orderID int64) (*payload.OrderResponse, *Error) {
	var out payload.OrderResponse
	if err := s.client.Get(ctx, fmt.Sprintf("orders/%d", orderID), &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ListForCurrentUser returns the orders of the user identified by the
// current access token.
func (s *OrderService) ListForCurrentUser(ctx context.Context) ([]payload.OrderResponse, *Error) {
	var out []payload.OrderResponse
	if err := s.client.Get(ctx, "orders/user", &out); err != nil {
		return nil, err
	}

	return out, nil
}
