package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale statuses, derived from (Total, PaidAmount) and never stored as an
// independent flag that could drift.
const (
	SaleStatusPaid    = "paid"
	SaleStatusPartial = "partial"
	SaleStatusUnpaid  = "unpaid"
)

// SaleItem is one invoice line. Amount is always Quantity × Rate.
type SaleItem struct {
	Name     string
	Size     string
	Quantity int64
	Rate     decimal.Decimal
	Amount   decimal.Decimal
}

// Sale is an invoice. CustomerName and CustomerEmail are snapshots taken at
// creation time; they deliberately do not follow later customer edits (the
// invoice should read as it did when issued).
type Sale struct {
	ID                string
	Date              time.Time
	CustomerID        string
	CustomerName      string
	CustomerEmail     string
	Items             []SaleItem
	Subtotal          decimal.Decimal
	Transport         decimal.Decimal
	Total             decimal.Decimal
	PaidAmount        decimal.Decimal
	OutstandingAmount decimal.Decimal
	Status            string
}

// Clone returns a deep copy (items included).
func (s *Sale) Clone() *Sale {
	cp := *s
	cp.Items = make([]SaleItem, len(s.Items))
	copy(cp.Items, s.Items)
	return &cp
}
