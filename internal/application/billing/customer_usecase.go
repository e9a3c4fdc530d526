package billing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Iamyashjain/handy-sales-manager/internal/application/dto"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain/entity"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain/repository"
	"github.com/Iamyashjain/handy-sales-manager/internal/infrastructure/memory"
)

// CustomerUseCase customer screen operations. Aggregates always start at zero;
// only ledger operations move them afterwards.
type CustomerUseCase struct {
	repo     repository.CustomerRepository
	sales    repository.SaleRepository
	payments repository.PaymentRepository
	seq      repository.IDSequence
}

// NewCustomerUseCase builds the usecase.
func NewCustomerUseCase(
	repo repository.CustomerRepository,
	sales repository.SaleRepository,
	payments repository.PaymentRepository,
	seq repository.IDSequence,
) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, sales: sales, payments: payments, seq: seq}
}

// Create creates a new customer profile.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrValidation
	}
	customer := &entity.Customer{
		ID:                 uc.seq.Next(memory.PrefixCustomer),
		Name:               in.Name,
		Email:              in.Email,
		Phone:              in.Phone,
		Address:            in.Address,
		TotalPurchases:     decimal.Zero,
		OutstandingBalance: decimal.Zero,
		CreatedAt:          time.Now(),
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Update edits contact fields. The ledger aggregates are not editable here;
// sale/payment snapshots taken earlier deliberately keep the old contact data.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrValidation
		}
		customer.Name = *in.Name
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID fetches one customer.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List lists customers, optionally filtered by a case-insensitive substring of
// the name or ID.
func (uc *CustomerUseCase) List(search string) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(search)
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		if term != "" &&
			!strings.Contains(strings.ToLower(c.Name), term) &&
			!strings.Contains(strings.ToLower(c.ID), term) {
			continue
		}
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Statement returns the customer together with all their sales and payments.
func (uc *CustomerUseCase) Statement(id string) (*dto.CustomerStatementResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	sales, err := uc.sales.ListByCustomer(id)
	if err != nil {
		return nil, err
	}
	payments, err := uc.payments.ListByCustomer(id)
	if err != nil {
		return nil, err
	}

	out := &dto.CustomerStatementResponse{
		Customer: *toCustomerResponse(customer),
		Sales:    make([]dto.SaleResponse, 0, len(sales)),
		Payments: make([]dto.PaymentResponse, 0, len(payments)),
	}
	for _, s := range sales {
		out.Sales = append(out.Sales, *toSaleResponse(s))
	}
	for _, p := range payments {
		out.Payments = append(out.Payments, *toPaymentResponse(p))
	}
	return out, nil
}
