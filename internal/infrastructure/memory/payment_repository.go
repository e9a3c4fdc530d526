package memory

import (
	"github.com/Iamyashjain/handy-sales-manager/internal/domain"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain/entity"
)

// PaymentRepository is the in-memory payment collection. When inTx is set, the
// enclosing RunLedger call already holds the store lock.
type PaymentRepository struct {
	store *Store
	inTx  bool
}

func (r *PaymentRepository) Create(p *entity.Payment) error {
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	if _, ok := r.store.payments[p.ID]; ok {
		return domain.ErrDuplicate
	}
	r.store.payments[p.ID] = p.Clone()
	r.store.paymentOrder = append([]string{p.ID}, r.store.paymentOrder...)
	return nil
}

func (r *PaymentRepository) GetByID(id string) (*entity.Payment, error) {
	if !r.inTx {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	p, ok := r.store.payments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p.Clone(), nil
}

func (r *PaymentRepository) Update(p *entity.Payment) error {
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	if _, ok := r.store.payments[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.payments[p.ID] = p.Clone()
	return nil
}

func (r *PaymentRepository) Delete(id string) error {
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	if _, ok := r.store.payments[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.payments, id)
	r.store.paymentOrder = removeFromOrder(r.store.paymentOrder, id)
	return nil
}

func (r *PaymentRepository) List() ([]*entity.Payment, error) {
	if !r.inTx {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	out := make([]*entity.Payment, 0, len(r.store.paymentOrder))
	for _, id := range r.store.paymentOrder {
		out = append(out, r.store.payments[id].Clone())
	}
	return out, nil
}

func (r *PaymentRepository) ListByCustomer(customerID string) ([]*entity.Payment, error) {
	if !r.inTx {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	out := make([]*entity.Payment, 0)
	for _, id := range r.store.paymentOrder {
		if p := r.store.payments[id]; p.CustomerID == customerID {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}
