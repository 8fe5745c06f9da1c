package api

// Services groups the storefront endpoint services over one shared client.
type Services struct {
	Auth     *AuthService
	Users    *UserService
	Products *ProductService
	Orders   *OrderService
}

// NewServices creates every endpoint service backed by the given client.
func NewServices(client *Client) *Services {
	return &Services{
		Auth:     NewAuthService(client),
		Users:    NewUserService(client),
		Products: NewProductService(client),
		Orders:   NewOrderService(client),
	}
}
