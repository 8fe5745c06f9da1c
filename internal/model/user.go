package model

// User represents an account on the storefront API.
type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	CreatedAt   int64  `json:"created_at"`
}
