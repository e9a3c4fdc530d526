package dto

import "github.com/shopspring/decimal"

// PurchaseItemRequest one draft purchase line. ProductID optionally prefills
// name/size/unit price from the catalog.
type PurchaseItemRequest struct {
	ProductID string          `json:"product_id,omitempty"`
	Name      string          `json:"name,omitempty"`
	Size      string          `json:"size,omitempty"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// PurchaseRequest body for POST /api/purchases.
type PurchaseRequest struct {
	Supplier      string                `json:"supplier"`
	SupplierEmail string                `json:"supplier_email,omitempty"`
	InvoiceNumber string                `json:"invoice_number,omitempty"`
	Items         []PurchaseItemRequest `json:"items"`
}

// PurchaseItemResponse one purchase line in responses.
type PurchaseItemResponse struct {
	Name      string          `json:"name"`
	Size      string          `json:"size,omitempty"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Amount    decimal.Decimal `json:"amount"`
}

// PurchaseResponse purchase with derived totals.
type PurchaseResponse struct {
	ID            string                 `json:"id"`
	Date          string                 `json:"date"`
	Supplier      string                 `json:"supplier"`
	SupplierEmail string                 `json:"supplier_email,omitempty"`
	InvoiceNumber string                 `json:"invoice_number,omitempty"`
	Items         []PurchaseItemResponse `json:"items"`
	Subtotal      decimal.Decimal        `json:"subtotal"`
	Tax           decimal.Decimal        `json:"tax"`
	Total         decimal.Decimal        `json:"total"`
	Status        string                 `json:"status"`
}
