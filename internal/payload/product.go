package payload

import "github.com/romsper/testing-playground-client/internal/model"

type CreateProductRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
}

type ProductResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

func (r ProductResponse) Product() model.Product {
	return model.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
	}
}
