package dto

import "github.com/shopspring/decimal"

// BillItemRequest one line of an ad-hoc bill.
type BillItemRequest struct {
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
}

// BillRequest body for POST /api/bills/preview: an ad-hoc bill typed directly
// into the bill form, independent of the sales ledger.
type BillRequest struct {
	InvoiceNumber   string            `json:"invoice_number,omitempty"`
	Date            string            `json:"date,omitempty"`
	CustomerName    string            `json:"customer_name"`
	CustomerAddress string            `json:"customer_address,omitempty"`
	Items           []BillItemRequest `json:"items"`
}

// BillItemResponse one computed bill line.
type BillItemResponse struct {
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// BillResponse the computed bill document. Rendering to PDF or print is left
// to the client.
type BillResponse struct {
	InvoiceNumber   string             `json:"invoice_number"`
	Date            string             `json:"date"`
	CustomerName    string             `json:"customer_name"`
	CustomerAddress string             `json:"customer_address,omitempty"`
	Items           []BillItemResponse `json:"items"`
	Subtotal        decimal.Decimal    `json:"subtotal"`
	Tax             decimal.Decimal    `json:"tax"`
	Total           decimal.Decimal    `json:"total"`
}
