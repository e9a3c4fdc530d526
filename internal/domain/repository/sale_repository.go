package repository

import "github.com/Iamyashjain/handy-sales-manager/internal/domain/entity"

// SaleRepository is the persistence port for sales (invoices).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	Update(sale *entity.Sale) error
	Delete(id string) error
	List() ([]*entity.Sale, error)
	ListByCustomer(customerID string) ([]*entity.Sale, error)
}
