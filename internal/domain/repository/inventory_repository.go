package repository

import "github.com/Iamyashjain/handy-sales-manager/internal/domain/entity"

// InventoryRepository is the persistence port for stocked items.
type InventoryRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	List() ([]*entity.InventoryItem, error)
}
