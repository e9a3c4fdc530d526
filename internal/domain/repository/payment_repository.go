package repository

import "github.com/Iamyashjain/handy-sales-manager/internal/domain/entity"

// PaymentRepository is the persistence port for payments.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	Update(payment *entity.Payment) error
	Delete(id string) error
	List() ([]*entity.Payment, error)
	ListByCustomer(customerID string) ([]*entity.Payment, error)
}
