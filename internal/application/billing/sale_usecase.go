package billing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Iamyashjain/handy-sales-manager/internal/application/dto"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain/entity"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain/ledger"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain/repository"
	"github.com/Iamyashjain/handy-sales-manager/internal/infrastructure/memory"
	"github.com/Iamyashjain/handy-sales-manager/pkg/logger"
)

// SaleUseCase invoice operations. Every write that moves money goes through
// the ledger transitions inside a single transaction, so the customer
// aggregates and the sale record always land together.
type SaleUseCase struct {
	tx       LedgerTxRunner
	sales    repository.SaleRepository
	products repository.ProductRepository
	seq      repository.IDSequence
	log      *logger.Logger
}

// NewSaleUseCase builds the usecase.
func NewSaleUseCase(
	tx LedgerTxRunner,
	sales repository.SaleRepository,
	products repository.ProductRepository,
	seq repository.IDSequence,
	log *logger.Logger,
) *SaleUseCase {
	return &SaleUseCase{tx: tx, sales: sales, products: products, seq: seq, log: log}
}

// Create records a new sale and applies its effect on the customer balance.
func (uc *SaleUseCase) Create(in dto.SaleRequest) (*dto.SaleResponse, error) {
	input, err := uc.toInput(in)
	if err != nil {
		return nil, err
	}
	if input.Date.IsZero() {
		input.Date = time.Now()
	}

	// The ID is taken before the transaction; a failed create burns it, which
	// keeps IDs strictly increasing either way.
	id := uc.seq.Next(memory.PrefixSale)

	var created *entity.Sale
	err = uc.tx.RunLedger(func(
		customers repository.CustomerRepository,
		sales repository.SaleRepository,
		_ repository.PaymentRepository,
	) error {
		customer, err := customers.GetByID(input.CustomerID)
		if err != nil {
			return err
		}
		sale, updated, err := ledger.ApplySaleCreate(customer, input)
		if err != nil {
			return err
		}
		sale.ID = id
		if err := sales.Create(sale); err != nil {
			return err
		}
		if err := customers.Update(updated); err != nil {
			return err
		}
		created = sale
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("sale_id", created.ID).
		Str("customer_id", created.CustomerID).
		Str("total", created.Total.String()).
		Msg("sale created")
	return toSaleResponse(created), nil
}

// Update recomputes the sale from the submitted draft and moves the customer
// aggregates by the difference. Changing customer_id reassigns the sale:
// the old owner's aggregates are reversed and the new owner's grow.
func (uc *SaleUseCase) Update(id string, in dto.SaleRequest) (*dto.SaleResponse, error) {
	input, err := uc.toInput(in)
	if err != nil {
		return nil, err
	}

	var updated *entity.Sale
	err = uc.tx.RunLedger(func(
		customers repository.CustomerRepository,
		sales repository.SaleRepository,
		_ repository.PaymentRepository,
	) error {
		old, err := sales.GetByID(id)
		if err != nil {
			return err
		}
		if input.CustomerID == "" {
			input.CustomerID = old.CustomerID
		}
		if input.Date.IsZero() {
			input.Date = old.Date
		}
		oldCustomer, err := customers.GetByID(old.CustomerID)
		if err != nil {
			return err
		}
		newCustomer := oldCustomer
		if input.CustomerID != old.CustomerID {
			if newCustomer, err = customers.GetByID(input.CustomerID); err != nil {
				return err
			}
		}

		sale, owners, err := ledger.ApplySaleEdit(old, input, oldCustomer, newCustomer)
		if err != nil {
			return err
		}
		if err := sales.Update(sale); err != nil {
			return err
		}
		for _, c := range owners {
			if err := customers.Update(c); err != nil {
				return err
			}
		}
		updated = sale
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("sale_id", updated.ID).
		Str("customer_id", updated.CustomerID).
		Str("total", updated.Total.String()).
		Msg("sale updated")
	return toSaleResponse(updated), nil
}

// Delete removes the sale and reverses its effect on the customer.
func (uc *SaleUseCase) Delete(id string) error {
	err := uc.tx.RunLedger(func(
		customers repository.CustomerRepository,
		sales repository.SaleRepository,
		_ repository.PaymentRepository,
	) error {
		sale, err := sales.GetByID(id)
		if err != nil {
			return err
		}
		customer, err := customers.GetByID(sale.CustomerID)
		if err != nil {
			return err
		}
		updated, err := ledger.ApplySaleDelete(sale, customer)
		if err != nil {
			return err
		}
		if err := sales.Delete(id); err != nil {
			return err
		}
		return customers.Update(updated)
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("sale_id", id).Msg("sale deleted")
	return nil
}

// GetByID fetches one sale.
func (uc *SaleUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.sales.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// List lists sales, optionally filtered by customer name or invoice ID.
func (uc *SaleUseCase) List(search string) ([]*dto.SaleResponse, error) {
	list, err := uc.sales.List()
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(search)
	out := make([]*dto.SaleResponse, 0, len(list))
	for _, s := range list {
		if term != "" &&
			!strings.Contains(strings.ToLower(s.CustomerName), term) &&
			!strings.Contains(strings.ToLower(s.ID), term) {
			continue
		}
		out = append(out, toSaleResponse(s))
	}
	return out, nil
}

// Preview derives the totals for a draft without storing anything. The sale
// form calls this on every change; the figures it returns are exactly what
// Create would store for the same draft.
func (uc *SaleUseCase) Preview(in dto.SaleRequest) (*dto.SalePreviewResponse, error) {
	input, err := uc.toInput(in)
	if err != nil {
		return nil, err
	}
	fig := ledger.ComputeSale(input.Items, input.Transport, input.PaidAmount)

	items := make([]dto.SaleItemResponse, 0, len(fig.Items))
	for _, it := range fig.Items {
		items = append(items, dto.SaleItemResponse{
			Name:     it.Name,
			Size:     it.Size,
			Quantity: it.Quantity,
			Rate:     it.Rate,
			Amount:   it.Amount,
		})
	}
	return &dto.SalePreviewResponse{
		Items:             items,
		Subtotal:          fig.Subtotal,
		Transport:         fig.Transport,
		Total:             fig.Total,
		PaidAmount:        fig.PaidAmount,
		OutstandingAmount: fig.Outstanding,
		Status:            fig.Status,
	}, nil
}

// toInput converts the request to a ledger input, resolving product
// references into line snapshots. Explicit name/size/rate values win over the
// catalog prefill, matching how the sale form lets users override a picked
// product. An empty date stays zero; Create defaults it to today and Update
// to the sale's current date.
func (uc *SaleUseCase) toInput(in dto.SaleRequest) (ledger.SaleInput, error) {
	input := ledger.SaleInput{
		CustomerID: in.CustomerID,
		Transport:  in.Transport,
		PaidAmount: in.PaidAmount,
		Items:      make([]ledger.ItemInput, 0, len(in.Items)),
	}
	if in.Date != "" {
		date, err := time.Parse(dateLayout, in.Date)
		if err != nil {
			return ledger.SaleInput{}, domain.ErrValidation
		}
		input.Date = date
	}

	for _, it := range in.Items {
		line := ledger.ItemInput{
			Name:     it.Name,
			Size:     it.Size,
			Quantity: it.Quantity,
			Rate:     it.Rate,
		}
		if it.ProductID != "" {
			product, err := uc.products.GetByID(it.ProductID)
			if err != nil {
				return ledger.SaleInput{}, err
			}
			if line.Name == "" {
				line.Name = product.Name
			}
			if line.Size == "" {
				line.Size = product.Size
			}
			if line.Rate.Equal(decimal.Zero) {
				line.Rate = product.Rate
			}
		}
		input.Items = append(input.Items, line)
	}
	return input, nil
}
