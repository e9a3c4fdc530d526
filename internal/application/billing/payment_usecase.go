package billing

import (
	"strings"
	"time"

	"github.com/Iamyashjain/handy-sales-manager/internal/application/dto"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain/entity"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain/ledger"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain/repository"
	"github.com/Iamyashjain/handy-sales-manager/internal/infrastructure/memory"
	"github.com/Iamyashjain/handy-sales-manager/pkg/logger"
)

// PaymentUseCase payment operations. Like sales, every balance-moving write
// runs inside one ledger transaction.
type PaymentUseCase struct {
	tx       LedgerTxRunner
	payments repository.PaymentRepository
	seq      repository.IDSequence
	log      *logger.Logger
}

// NewPaymentUseCase builds the usecase.
func NewPaymentUseCase(
	tx LedgerTxRunner,
	payments repository.PaymentRepository,
	seq repository.IDSequence,
	log *logger.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{tx: tx, payments: payments, seq: seq, log: log}
}

// Create records money received and drops the customer balance, clamped at
// zero. Over-payment is accepted; a zero or negative amount is not.
func (uc *PaymentUseCase) Create(in dto.PaymentRequest) (*dto.PaymentResponse, error) {
	input, err := toPaymentInput(in)
	if err != nil {
		return nil, err
	}
	if input.Date.IsZero() {
		input.Date = time.Now()
	}

	id := uc.seq.Next(memory.PrefixPayment)

	var created *entity.Payment
	err = uc.tx.RunLedger(func(
		customers repository.CustomerRepository,
		_ repository.SaleRepository,
		payments repository.PaymentRepository,
	) error {
		customer, err := customers.GetByID(input.CustomerID)
		if err != nil {
			return err
		}
		payment, updated, err := ledger.ApplyPaymentCreate(customer, input)
		if err != nil {
			return err
		}
		payment.ID = id
		if err := payments.Create(payment); err != nil {
			return err
		}
		if err := customers.Update(updated); err != nil {
			return err
		}
		created = payment
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("payment_id", created.ID).
		Str("customer_id", created.CustomerID).
		Str("amount", created.Amount.String()).
		Msg("payment recorded")
	return toPaymentResponse(created), nil
}

// Update edits a payment in place and moves the balance by the amount
// difference. Reassigning a payment to another customer is not supported;
// delete and re-create instead.
func (uc *PaymentUseCase) Update(id string, in dto.PaymentRequest) (*dto.PaymentResponse, error) {
	input, err := toPaymentInput(in)
	if err != nil {
		return nil, err
	}

	var updated *entity.Payment
	err = uc.tx.RunLedger(func(
		customers repository.CustomerRepository,
		_ repository.SaleRepository,
		payments repository.PaymentRepository,
	) error {
		old, err := payments.GetByID(id)
		if err != nil {
			return err
		}
		if input.CustomerID != "" && input.CustomerID != old.CustomerID {
			return domain.ErrValidation
		}
		customer, err := customers.GetByID(old.CustomerID)
		if err != nil {
			return err
		}
		payment, owner, err := ledger.ApplyPaymentEdit(old, input, customer)
		if err != nil {
			return err
		}
		if err := payments.Update(payment); err != nil {
			return err
		}
		if err := customers.Update(owner); err != nil {
			return err
		}
		updated = payment
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("payment_id", updated.ID).
		Str("amount", updated.Amount.String()).
		Msg("payment updated")
	return toPaymentResponse(updated), nil
}

// Delete removes the payment and adds its amount back onto the balance.
func (uc *PaymentUseCase) Delete(id string) error {
	err := uc.tx.RunLedger(func(
		customers repository.CustomerRepository,
		_ repository.SaleRepository,
		payments repository.PaymentRepository,
	) error {
		payment, err := payments.GetByID(id)
		if err != nil {
			return err
		}
		customer, err := customers.GetByID(payment.CustomerID)
		if err != nil {
			return err
		}
		updated, err := ledger.ApplyPaymentDelete(payment, customer)
		if err != nil {
			return err
		}
		if err := payments.Delete(id); err != nil {
			return err
		}
		return customers.Update(updated)
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("payment_id", id).Msg("payment deleted")
	return nil
}

// GetByID fetches one payment.
func (uc *PaymentUseCase) GetByID(id string) (*dto.PaymentResponse, error) {
	payment, err := uc.payments.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// List lists payments, optionally filtered by customer name or invoice
// reference.
func (uc *PaymentUseCase) List(search string) ([]*dto.PaymentResponse, error) {
	list, err := uc.payments.List()
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(search)
	out := make([]*dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.CustomerName), term) &&
			!strings.Contains(strings.ToLower(p.InvoiceID), term) &&
			!strings.Contains(strings.ToLower(p.ID), term) {
			continue
		}
		out = append(out, toPaymentResponse(p))
	}
	return out, nil
}

func toPaymentInput(in dto.PaymentRequest) (ledger.PaymentInput, error) {
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return ledger.PaymentInput{}, domain.ErrValidation
	}
	input := ledger.PaymentInput{
		CustomerID:    in.CustomerID,
		InvoiceID:     in.InvoiceID,
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
	}
	if in.Date != "" {
		date, err := time.Parse(dateLayout, in.Date)
		if err != nil {
			return ledger.PaymentInput{}, domain.ErrValidation
		}
		input.Date = date
	}
	return input, nil
}
