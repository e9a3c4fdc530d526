// Package ledger keeps customer balances consistent with the sales and
// payments that reference them.
//
// Every operation is a pure state transition: it takes current records, returns
// updated copies, and never mutates its inputs. Callers own the collections and
// are responsible for storing the returned values atomically. The invariants:
//
//   - a customer's OutstandingBalance tracks Σ sale.Total − Σ payment.Amount,
//     clamped at zero at each payment application (the clamp is lossy by
//     design, see ApplyPaymentEdit);
//   - TotalPurchases equals Σ Total over the customer's current sales;
//   - a sale's OutstandingAmount is always Total − PaidAmount, and Status is a
//     pure function of (Total, PaidAmount).
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Iamyashjain/handy-sales-manager/internal/domain"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain/entity"
)

// ItemInput is one draft invoice line.
type ItemInput struct {
	Name     string
	Size     string
	Quantity int64
	Rate     decimal.Decimal
}

// SaleInput is a draft sale as submitted by the sale form.
type SaleInput struct {
	CustomerID string
	Date       time.Time
	Items      []ItemInput
	Transport  decimal.Decimal
	PaidAmount decimal.Decimal
}

// PaymentInput is a draft payment. InvoiceID is a free-text reference and is
// not validated against existing sales.
type PaymentInput struct {
	CustomerID    string
	InvoiceID     string
	Amount        decimal.Decimal
	PaymentMethod string
	Date          time.Time
	Notes         string
}

// Figures are the derived money fields of a sale. Computing them is restatable:
// the same input always yields the same figures, so forms may recompute on
// every keystroke.
type Figures struct {
	Items       []entity.SaleItem
	Subtotal    decimal.Decimal
	Transport   decimal.Decimal
	Total       decimal.Decimal
	PaidAmount  decimal.Decimal
	Outstanding decimal.Decimal
	Status      string
}

// Status derives the three-valued sale status from total and paid amount.
func Status(total, paid decimal.Decimal) string {
	if paid.GreaterThanOrEqual(total) {
		return entity.SaleStatusPaid
	}
	if paid.IsZero() {
		return entity.SaleStatusUnpaid
	}
	return entity.SaleStatusPartial
}

// ComputeSale derives subtotal, total, outstanding, and status from draft
// lines. Negative quantities, rates, transport, and paid amounts are
// normalized to zero: the permissive default-to-zero policy the forms rely
// on. Empty item lists are valid (total is then just the transport charge).
func ComputeSale(items []ItemInput, transport, paid decimal.Decimal) Figures {
	transport = clampZero(transport)
	paid = clampZero(paid)

	lines := make([]entity.SaleItem, 0, len(items))
	subtotal := decimal.Zero
	for _, it := range items {
		qty := it.Quantity
		if qty < 0 {
			qty = 0
		}
		rate := clampZero(it.Rate)
		amount := rate.Mul(decimal.NewFromInt(qty))
		lines = append(lines, entity.SaleItem{
			Name:     it.Name,
			Size:     it.Size,
			Quantity: qty,
			Rate:     rate,
			Amount:   amount,
		})
		subtotal = subtotal.Add(amount)
	}

	total := subtotal.Add(transport)
	outstanding := total.Sub(paid)
	return Figures{
		Items:       lines,
		Subtotal:    subtotal,
		Transport:   transport,
		Total:       total,
		PaidAmount:  paid,
		Outstanding: outstanding,
		Status:      Status(total, paid),
	}
}

// ApplySaleCreate computes the sale's derived fields and applies its effect on
// the customer: TotalPurchases grows by the sale total, OutstandingBalance by
// the unpaid portion. The returned sale carries the customer name/email
// snapshot but no ID; the caller assigns the ID and stores both records.
func ApplySaleCreate(customer *entity.Customer, in SaleInput) (*entity.Sale, *entity.Customer, error) {
	if customer == nil {
		return nil, nil, domain.ErrNotFound
	}
	fig := ComputeSale(in.Items, in.Transport, in.PaidAmount)

	sale := &entity.Sale{
		Date:              in.Date,
		CustomerID:        customer.ID,
		CustomerName:      customer.Name,
		CustomerEmail:     customer.Email,
		Items:             fig.Items,
		Subtotal:          fig.Subtotal,
		Transport:         fig.Transport,
		Total:             fig.Total,
		PaidAmount:        fig.PaidAmount,
		OutstandingAmount: fig.Outstanding,
		Status:            fig.Status,
	}

	updated := customer.Clone()
	updated.TotalPurchases = updated.TotalPurchases.Add(fig.Total)
	updated.OutstandingBalance = updated.OutstandingBalance.Add(fig.Outstanding)
	return sale, updated, nil
}

// ApplySaleEdit recomputes the sale from the new input and adjusts customer
// aggregates by the difference against the old figures.
//
// When the edit reassigns the sale to a different customer, the old customer
// has the old total/outstanding reversed and the new customer has the new
// figures added; both updated records are returned. The snapshot fields are
// retaken from the new customer in that case and left untouched otherwise.
func ApplySaleEdit(old *entity.Sale, in SaleInput, oldCustomer, newCustomer *entity.Customer) (*entity.Sale, []*entity.Customer, error) {
	if old == nil {
		return nil, nil, domain.ErrNotFound
	}
	if oldCustomer == nil || newCustomer == nil {
		return nil, nil, domain.ErrNotFound
	}
	fig := ComputeSale(in.Items, in.Transport, in.PaidAmount)

	sale := old.Clone()
	sale.Date = in.Date
	sale.Items = fig.Items
	sale.Subtotal = fig.Subtotal
	sale.Transport = fig.Transport
	sale.Total = fig.Total
	sale.PaidAmount = fig.PaidAmount
	sale.OutstandingAmount = fig.Outstanding
	sale.Status = fig.Status

	if oldCustomer.ID == newCustomer.ID {
		updated := oldCustomer.Clone()
		updated.TotalPurchases = updated.TotalPurchases.Add(fig.Total.Sub(old.Total))
		updated.OutstandingBalance = updated.OutstandingBalance.Add(fig.Outstanding.Sub(old.OutstandingAmount))
		return sale, []*entity.Customer{updated}, nil
	}

	// Cross-customer reassignment: reverse on the old owner, add to the new.
	sale.CustomerID = newCustomer.ID
	sale.CustomerName = newCustomer.Name
	sale.CustomerEmail = newCustomer.Email

	from := oldCustomer.Clone()
	from.TotalPurchases = from.TotalPurchases.Sub(old.Total)
	from.OutstandingBalance = from.OutstandingBalance.Sub(old.OutstandingAmount)

	to := newCustomer.Clone()
	to.TotalPurchases = to.TotalPurchases.Add(fig.Total)
	to.OutstandingBalance = to.OutstandingBalance.Add(fig.Outstanding)

	return sale, []*entity.Customer{from, to}, nil
}

// ApplySaleDelete reverses the sale's effect on the customer. The subtraction
// is unclamped: deleting a sale after an over-payment was clamped to zero can
// leave a negative balance, which mirrors the incremental bookkeeping model.
func ApplySaleDelete(sale *entity.Sale, customer *entity.Customer) (*entity.Customer, error) {
	if sale == nil || customer == nil {
		return nil, domain.ErrNotFound
	}
	updated := customer.Clone()
	updated.TotalPurchases = updated.TotalPurchases.Sub(sale.Total)
	updated.OutstandingBalance = updated.OutstandingBalance.Sub(sale.OutstandingAmount)
	return updated, nil
}

// ApplyPaymentCreate records money received: the customer's balance drops by
// the amount, clamped at zero. Amounts above the current balance are accepted
// as-is (over-payment is not an error). TotalPurchases is unaffected.
func ApplyPaymentCreate(customer *entity.Customer, in PaymentInput) (*entity.Payment, *entity.Customer, error) {
	if customer == nil {
		return nil, nil, domain.ErrNotFound
	}
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, nil, domain.ErrValidation
	}

	payment := &entity.Payment{
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		InvoiceID:     in.InvoiceID,
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
		Date:          in.Date,
		Notes:         in.Notes,
	}

	updated := customer.Clone()
	updated.OutstandingBalance = clampZero(updated.OutstandingBalance.Sub(in.Amount))
	return payment, updated, nil
}

// ApplyPaymentEdit adjusts the balance by the amount difference, clamped at
// zero. This is deliberately not a recompute from the full history: once a
// clamp has discarded an over-payment, repeated edits can drift from the
// Σsales − Σpayments identity. That lossy behavior is kept intact.
func ApplyPaymentEdit(old *entity.Payment, in PaymentInput, customer *entity.Customer) (*entity.Payment, *entity.Customer, error) {
	if old == nil || customer == nil {
		return nil, nil, domain.ErrNotFound
	}
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, nil, domain.ErrValidation
	}

	payment := old.Clone()
	payment.InvoiceID = in.InvoiceID
	payment.Amount = in.Amount
	payment.PaymentMethod = in.PaymentMethod
	payment.Notes = in.Notes
	if !in.Date.IsZero() {
		payment.Date = in.Date
	}

	diff := in.Amount.Sub(old.Amount)
	updated := customer.Clone()
	updated.OutstandingBalance = clampZero(updated.OutstandingBalance.Sub(diff))
	return payment, updated, nil
}

// ApplyPaymentDelete reverses a payment: the amount is added back to the
// balance, unclamped.
func ApplyPaymentDelete(payment *entity.Payment, customer *entity.Customer) (*entity.Customer, error) {
	if payment == nil || customer == nil {
		return nil, domain.ErrNotFound
	}
	updated := customer.Clone()
	updated.OutstandingBalance = updated.OutstandingBalance.Add(payment.Amount)
	return updated, nil
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
