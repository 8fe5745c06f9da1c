package payload

import "github.com/romsper/testing-playground-client/internal/model"

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type UserResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	CreatedAt   int64  `json:"createdAt"`
}

func (r UserResponse) User() model.User {
	return model.User{
		ID:          r.ID,
		Username:    r.Username,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		CreatedAt:   r.CreatedAt,
	}
}
