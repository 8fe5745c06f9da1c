package api

import (
	"context"

	"github.com/romsper/testing-playground-client/internal/payload"
)

// AuthService calls the authentication endpoints. It holds no state and adds
// no error handling beyond what the client surfaces.
type AuthService struct {
	client *Client
}

func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

func (s *AuthService) Login(ctx context.Context, req payload.LoginRequest) (*payload.LoginResponse, *Error) {
	var out payload.LoginResponse
	if err := s.client.Post(ctx, "auth/login", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (s *AuthService) RefreshToken(ctx context.Context, req payload.RefreshTokenRequest) (*payload.LoginResponse, *Error) {
	var out payload.LoginResponse
	if err := s.client.Post(ctx, "auth/refresh", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
