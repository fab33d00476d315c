// BYH Music Store | 2026
// dto.go

package catalog

import (
	"time"
)

// ProductForm is decoded from the multipart form the admin panel submits.
// Price and stock arrive as strings on the wire; gorilla/schema coerces
// them into numerics before validation.
type ProductForm struct {
	Name        string  `schema:"name"        validate:"required,min=1,max=200"`
	Category    string  `schema:"category"    validate:"required,min=1,max=100"`
	Price       float64 `schema:"price"       validate:"gte=0"`
	Stock       int     `schema:"stock"       validate:"gte=0"`
	Description string  `schema:"description" validate:"max=2000"`
}

type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type DeleteProductResponse struct {
	Message        string          `json:"message"`
	DeletedProduct ProductResponse `json:"deletedProduct"`
}

func ToProductResponse(p *Product) ProductResponse {
	resp := ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.ImageURL != nil {
		resp.ImageURL = *p.ImageURL
	}
	return resp
}

func ToProductResponseList(products []Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, ToProductResponse(&p))
	}
	return responses
}
