package memory

import (
	"github.com/Iamyashjain/handy-sales-manager/internal/domain"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain/entity"
)

// SaleRepository is the in-memory sale collection. When inTx is set, the
// enclosing RunLedger call already holds the store lock.
type SaleRepository struct {
	store *Store
	inTx  bool
}

func (r *SaleRepository) Create(s *entity.Sale) error {
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	if _, ok := r.store.sales[s.ID]; ok {
		return domain.ErrDuplicate
	}
	r.store.sales[s.ID] = s.Clone()
	r.store.saleOrder = append([]string{s.ID}, r.store.saleOrder...)
	return nil
}

func (r *SaleRepository) GetByID(id string) (*entity.Sale, error) {
	if !r.inTx {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	s, ok := r.store.sales[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s.Clone(), nil
}

func (r *SaleRepository) Update(s *entity.Sale) error {
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	if _, ok := r.store.sales[s.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.sales[s.ID] = s.Clone()
	return nil
}

func (r *SaleRepository) Delete(id string) error {
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	if _, ok := r.store.sales[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.sales, id)
	r.store.saleOrder = removeFromOrder(r.store.saleOrder, id)
	return nil
}

func (r *SaleRepository) List() ([]*entity.Sale, error) {
	if !r.inTx {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	out := make([]*entity.Sale, 0, len(r.store.saleOrder))
	for _, id := range r.store.saleOrder {
		out = append(out, r.store.sales[id].Clone())
	}
	return out, nil
}

func (r *SaleRepository) ListByCustomer(customerID string) ([]*entity.Sale, error) {
	if !r.inTx {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	out := make([]*entity.Sale, 0)
	for _, id := range r.store.saleOrder {
		if s := r.store.sales[id]; s.CustomerID == customerID {
			out = append(out, s.Clone())
		}
	}
	return out, nil
}
