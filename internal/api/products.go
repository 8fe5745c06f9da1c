package api

import (
	"context"
	"fmt"

	"github.com/romsper/testing-playground-client/internal/payload"
)

// ProductService calls the product catalog endpoints.
type ProductService struct {
	client *Client
}

func NewProductService(client *Client) *ProductService {
	return &ProductService{client: client}
}

func (s *ProductService) Create(ctx context.Context, req payload.CreateProductRequest) (*payload.ProductResponse, *Error) {
	var out payload.ProductResponse
	if err := s.client.Post(ctx, "products/create", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (s *ProductService) List(ctx context.Context, offset, limit int) ([]payload.ProductResponse, *Error) {
	var out []payload.ProductResponse
	if err := s.client.Get(ctx, fmt.Sprintf("products/?offset=%d&limit=%d", offset, limit), &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *ProductService) GetByID(ctx context.Context, id int64) (*payload.ProductResponse, *Error) {
	var out payload.ProductResponse
	if err := s.client.Get(ctx, fmt.Sprintf("products/%d", id), &out); err != nil {
		return nil, err
	}

	return &out, nil
}
