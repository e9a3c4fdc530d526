package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body for POST /api/products.
type CreateProductRequest struct {
	Name string          `json:"name"`
	Size string          `json:"size,omitempty"`
	Rate decimal.Decimal `json:"rate"`
}

// UpdateProductRequest body for PUT /api/products/:id.
type UpdateProductRequest struct {
	Name *string          `json:"name,omitempty"`
	Size *string          `json:"size,omitempty"`
	Rate *decimal.Decimal `json:"rate,omitempty"`
}

// ProductResponse catalog product in responses.
type ProductResponse struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Size string          `json:"size,omitempty"`
	Rate decimal.Decimal `json:"rate"`
}
