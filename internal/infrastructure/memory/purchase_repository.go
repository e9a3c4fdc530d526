package memory

import (
	"github.com/Iamyashjain/handy-sales-manager/internal/domain"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain/entity"
)

// PurchaseRepository is the in-memory purchase collection.
type PurchaseRepository struct {
	store *Store
}

func (r *PurchaseRepository) Create(p *entity.Purchase) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.purchases[p.ID]; ok {
		return domain.ErrDuplicate
	}
	r.store.purchases[p.ID] = p.Clone()
	r.store.purchaseOrder = append([]string{p.ID}, r.store.purchaseOrder...)
	return nil
}

func (r *PurchaseRepository) GetByID(id string) (*entity.Purchase, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	p, ok := r.store.purchases[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p.Clone(), nil
}

func (r *PurchaseRepository) Update(p *entity.Purchase) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.purchases[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.purchases[p.ID] = p.Clone()
	return nil
}

func (r *PurchaseRepository) List() ([]*entity.Purchase, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.Purchase, 0, len(r.store.purchaseOrder))
	for _, id := range r.store.purchaseOrder {
		out = append(out, r.store.purchases[id].Clone())
	}
	return out, nil
}
