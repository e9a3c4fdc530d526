package dto

import "github.com/shopspring/decimal"

// SaleItemRequest one draft invoice line. When ProductID is set the handler
// prefills name/size/rate from the catalog; explicit fields win over prefill.
type SaleItemRequest struct {
	ProductID string          `json:"product_id,omitempty"`
	Name      string          `json:"name,omitempty"`
	Size      string          `json:"size,omitempty"`
	Quantity  int64           `json:"quantity"`
	Rate      decimal.Decimal `json:"rate"`
}

// SaleRequest body for POST /api/sales and PUT /api/sales/:id. Date is
// YYYY-MM-DD; empty means today.
type SaleRequest struct {
	CustomerID string            `json:"customer_id"`
	Date       string            `json:"date,omitempty"`
	Items      []SaleItemRequest `json:"items"`
	Transport  decimal.Decimal   `json:"transport"`
	PaidAmount decimal.Decimal   `json:"paid_amount"`
}

// SaleItemResponse one invoice line in responses.
type SaleItemResponse struct {
	Name     string          `json:"name"`
	Size     string          `json:"size,omitempty"`
	Quantity int64           `json:"quantity"`
	Rate     decimal.Decimal `json:"rate"`
	Amount   decimal.Decimal `json:"amount"`
}

// SaleResponse invoice with derived totals.
type SaleResponse struct {
	ID                string             `json:"id"`
	Date              string             `json:"date"`
	CustomerID        string             `json:"customer_id"`
	CustomerName      string             `json:"customer_name"`
	CustomerEmail     string             `json:"customer_email,omitempty"`
	Items             []SaleItemResponse `json:"items"`
	Subtotal          decimal.Decimal    `json:"subtotal"`
	Transport         decimal.Decimal    `json:"transport"`
	Total             decimal.Decimal    `json:"total"`
	PaidAmount        decimal.Decimal    `json:"paid_amount"`
	OutstandingAmount decimal.Decimal    `json:"outstanding_amount"`
	Status            string             `json:"status"`
}

// SalePreviewResponse derived totals for a draft, for POST /api/sales/preview.
// Pure recomputation: nothing is stored.
type SalePreviewResponse struct {
	Items             []SaleItemResponse `json:"items"`
	Subtotal          decimal.Decimal    `json:"subtotal"`
	Transport         decimal.Decimal    `json:"transport"`
	Total             decimal.Decimal    `json:"total"`
	PaidAmount        decimal.Decimal    `json:"paid_amount"`
	OutstandingAmount decimal.Decimal    `json:"outstanding_amount"`
	Status            string             `json:"status"`
}
