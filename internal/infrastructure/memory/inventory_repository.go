package memory

import (
	"github.com/Iamyashjain/handy-sales-manager/internal/domain"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain/entity"
)

// InventoryRepository is the in-memory stock collection.
type InventoryRepository struct {
	store *Store
}

func (r *InventoryRepository) Create(item *entity.InventoryItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.inventory[item.ID]; ok {
		return domain.ErrDuplicate
	}
	r.store.inventory[item.ID] = item.Clone()
	r.store.inventoryOrder = append([]string{item.ID}, r.store.inventoryOrder...)
	return nil
}

func (r *InventoryRepository) GetByID(id string) (*entity.InventoryItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	item, ok := r.store.inventory[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return item.Clone(), nil
}

func (r *InventoryRepository) Update(item *entity.InventoryItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.inventory[item.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.inventory[item.ID] = item.Clone()
	return nil
}

func (r *InventoryRepository) List() ([]*entity.InventoryItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.InventoryItem, 0, len(r.store.inventoryOrder))
	for _, id := range r.store.inventoryOrder {
		out = append(out, r.store.inventory[id].Clone())
	}
	return out, nil
}
