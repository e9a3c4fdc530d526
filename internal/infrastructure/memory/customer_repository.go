package memory

import (
	"github.com/Iamyashjain/handy-sales-manager/internal/domain"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain/entity"
)

// CustomerRepository is the in-memory customer collection. When inTx is set,
// the enclosing RunLedger call already holds the store lock.
type CustomerRepository struct {
	store *Store
	inTx  bool
}

func (r *CustomerRepository) Create(c *entity.Customer) error {
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	if _, ok := r.store.customers[c.ID]; ok {
		return domain.ErrDuplicate
	}
	r.store.customers[c.ID] = c.Clone()
	r.store.customerOrder = append([]string{c.ID}, r.store.customerOrder...)
	return nil
}

func (r *CustomerRepository) GetByID(id string) (*entity.Customer, error) {
	if !r.inTx {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	c, ok := r.store.customers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c.Clone(), nil
}

func (r *CustomerRepository) Update(c *entity.Customer) error {
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	if _, ok := r.store.customers[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.customers[c.ID] = c.Clone()
	return nil
}

func (r *CustomerRepository) List() ([]*entity.Customer, error) {
	if !r.inTx {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	out := make([]*entity.Customer, 0, len(r.store.customerOrder))
	for _, id := range r.store.customerOrder {
		out = append(out, r.store.customers[id].Clone())
	}
	return out, nil
}
