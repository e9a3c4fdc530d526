package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer represents a buyer with running ledger aggregates.
//
// TotalPurchases is the lifetime sum of invoice totals for the customer, net
// of sale edits and deletions. OutstandingBalance is what the customer still
// owes; it is clamped at zero when payments are applied, never when sales are
// added.
type Customer struct {
	ID                 string
	Name               string
	Email              string
	Phone              string
	Address            string
	TotalPurchases     decimal.Decimal
	OutstandingBalance decimal.Decimal
	CreatedAt          time.Time
}

// Clone returns a copy safe to mutate without touching the stored record.
func (c *Customer) Clone() *Customer {
	cp := *c
	return &cp
}
