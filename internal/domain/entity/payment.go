package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods accepted by the payment form.
const (
	PaymentMethodCash         = "cash"
	PaymentMethodCard         = "card"
	PaymentMethodUPI          = "upi"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodCheque       = "cheque"
)

// ValidPaymentMethod reports whether m is one of the accepted methods.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodUPI,
		PaymentMethodBankTransfer, PaymentMethodCheque:
		return true
	}
	return false
}

// Payment is money received from a customer. CustomerName is a snapshot.
// InvoiceID is a free-text reference, not a structural foreign key; it is not
// validated against existing sale IDs.
type Payment struct {
	ID            string
	CustomerID    string
	CustomerName  string
	InvoiceID     string
	Amount        decimal.Decimal
	PaymentMethod string
	Date          time.Time
	Notes         string
}

// Clone returns a copy safe to mutate without touching the stored record.
func (p *Payment) Clone() *Payment {
	cp := *p
	return &cp
}
