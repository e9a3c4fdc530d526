package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Iamyashjain/handy-sales-manager/internal/application/dto"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain"
)

// billTaxRate flat tax on ad-hoc bills, same rate as purchases.
var billTaxRate = decimal.NewFromFloat(0.10)

// BillUseCase computes ad-hoc bill documents. Bills are stateless: nothing is
// stored and the customer ledger is never touched, the client renders the
// returned document for print.
type BillUseCase struct{}

// NewBillUseCase builds the usecase.
func NewBillUseCase() *BillUseCase {
	return &BillUseCase{}
}

// Preview computes line amounts, subtotal, flat tax, and total for a draft
// bill. Missing invoice number and date default to a timestamp-based number
// and today.
func (uc *BillUseCase) Preview(in dto.BillRequest) (*dto.BillResponse, error) {
	if strings.TrimSpace(in.CustomerName) == "" {
		return nil, domain.ErrValidation
	}

	now := time.Now()
	number := in.InvoiceNumber
	if number == "" {
		number = fmt.Sprintf("BILL-%d", now.Unix())
	}
	date := in.Date
	if date == "" {
		date = now.Format(purchaseDateLayout)
	} else if _, err := time.Parse(purchaseDateLayout, date); err != nil {
		return nil, domain.ErrValidation
	}

	items := make([]dto.BillItemResponse, 0, len(in.Items))
	subtotal := decimal.Zero
	for _, it := range in.Items {
		qty := it.Quantity
		if qty < 0 {
			qty = 0
		}
		rate := it.Rate
		if rate.IsNegative() {
			rate = decimal.Zero
		}
		amount := rate.Mul(decimal.NewFromInt(qty))
		items = append(items, dto.BillItemResponse{
			Description: it.Description,
			Quantity:    qty,
			Rate:        rate,
			Amount:      amount,
		})
		subtotal = subtotal.Add(amount)
	}

	tax := subtotal.Mul(billTaxRate)
	return &dto.BillResponse{
		InvoiceNumber:   number,
		Date:            date,
		CustomerName:    in.CustomerName,
		CustomerAddress: in.CustomerAddress,
		Items:           items,
		Subtotal:        subtotal,
		Tax:             tax,
		Total:           subtotal.Add(tax),
	}, nil
}
