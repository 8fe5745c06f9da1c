package api

import (
	"context"

	"github.com/romsper/testing-playground-client/internal/payload"
)

// UserService calls the user account endpoints.
type UserService struct {
	client *Client
}

func NewUserService(client *Client) *UserService {
	return &UserService{client: client}
}

func (s *UserService) Create(ctx context.Context, req payload.CreateUserRequest) (*payload.UserResponse, *Error) {
	var out payload.UserResponse
	if err := s.client.Post(ctx, "users/create", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Me returns the account of the current user. The storefront API exposes
// this as a POST even though it is semantically a read.
func (s *UserService) Me(ctx context.Context) (*payload.UserResponse, *Error) {
	var out payload.UserResponse
	if err := s.client.Post(ctx, "users/me", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
