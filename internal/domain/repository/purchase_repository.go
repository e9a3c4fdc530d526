package repository

import "github.com/Iamyashjain/handy-sales-manager/internal/domain/entity"

// PurchaseRepository is the persistence port for supplier purchases.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	GetByID(id string) (*entity.Purchase, error)
	Update(purchase *entity.Purchase) error
	List() ([]*entity.Purchase, error)
}
