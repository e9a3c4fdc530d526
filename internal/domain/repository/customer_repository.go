package repository

import "github.com/Iamyashjain/handy-sales-manager/internal/domain/entity"

// CustomerRepository is the persistence port for customers. Customers are
// never hard-deleted; their aggregates change only through ledger operations.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	List() ([]*entity.Customer, error)
}
