package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase statuses.
const (
	PurchaseStatusPending  = "pending"
	PurchaseStatusReceived = "received"
)

// PurchaseItem is one line of a supplier purchase. Amount = Quantity × UnitPrice.
type PurchaseItem struct {
	Name      string
	Size      string
	Quantity  int64
	UnitPrice decimal.Decimal
	Amount    decimal.Decimal
}

// Purchase is an inbound supplier transaction. Purchases carry a flat 10% tax
// on the subtotal and do not touch the customer ledger.
type Purchase struct {
	ID            string
	Date          time.Time
	Supplier      string
	SupplierEmail string
	InvoiceNumber string
	Items         []PurchaseItem
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	Status        string
}

// Clone returns a deep copy (items included).
func (p *Purchase) Clone() *Purchase {
	cp := *p
	cp.Items = make([]PurchaseItem, len(p.Items))
	copy(cp.Items, p.Items)
	return &cp
}
