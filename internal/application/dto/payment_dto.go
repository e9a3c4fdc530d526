package dto

import "github.com/shopspring/decimal"

// PaymentRequest body for POST /api/payments and PUT /api/payments/:id.
// InvoiceID is a free-text reference and is not checked against sale IDs.
type PaymentRequest struct {
	CustomerID    string          `json:"customer_id"`
	InvoiceID     string          `json:"invoice_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	Date          string          `json:"date,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// PaymentResponse payment in responses.
type PaymentResponse struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id"`
	CustomerName  string          `json:"customer_name"`
	InvoiceID     string          `json:"invoice_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	Date          string          `json:"date"`
	Notes         string          `json:"notes,omitempty"`
}
