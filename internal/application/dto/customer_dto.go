package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body for POST /api/customers.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// UpdateCustomerRequest body for PUT /api/customers/:id. Only contact fields
// are editable; the ledger aggregates change through sales and payments only.
type UpdateCustomerRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// CustomerResponse customer in responses.
type CustomerResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Email              string          `json:"email,omitempty"`
	Phone              string          `json:"phone,omitempty"`
	Address            string          `json:"address,omitempty"`
	TotalPurchases     decimal.Decimal `json:"total_purchases"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	CreatedAt          string          `json:"created_at"`
}

// CustomerStatementResponse a customer with their sales and payments, for
// GET /api/customers/:id/statement.
type CustomerStatementResponse struct {
	Customer CustomerResponse  `json:"customer"`
	Sales    []SaleResponse    `json:"sales"`
	Payments []PaymentResponse `json:"payments"`
}
