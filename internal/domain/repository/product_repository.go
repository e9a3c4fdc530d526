package repository

import "github.com/Iamyashjain/handy-sales-manager/internal/domain/entity"

// ProductRepository is the persistence port for the product catalog.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	List() ([]*entity.Product, error)
}
