package memory

import (
	"github.com/Iamyashjain/handy-sales-manager/internal/domain"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain/entity"
)

// ProductRepository is the in-memory product catalog.
type ProductRepository struct {
	store *Store
}

func (r *ProductRepository) Create(p *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.products[p.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *p
	r.store.products[p.ID] = &cp
	r.store.productOrder = append([]string{p.ID}, r.store.productOrder...)
	return nil
}

func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	p, ok := r.store.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *ProductRepository) Update(p *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *ProductRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.products, id)
	r.store.productOrder = removeFromOrder(r.store.productOrder, id)
	return nil
}

func (r *ProductRepository) List() ([]*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.store.productOrder))
	for _, id := range r.store.productOrder {
		cp := *r.store.products[id]
		out = append(out, &cp)
	}
	return out, nil
}
