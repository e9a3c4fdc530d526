// Package usecase holds the application services outside the customer ledger:
// catalog, purchasing, inventory, and ad-hoc billing.
package usecase

import (
	"strings"
	"time"

	"github.com/Iamyashjain/handy-sales-manager/internal/application/dto"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain/entity"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain/repository"
	"github.com/Iamyashjain/handy-sales-manager/internal/infrastructure/memory"
)

// ProductUseCase catalog CRUD. Products are reference data: sale and purchase
// lines copy them at creation time, so edits and deletes here never rewrite
// history.
type ProductUseCase struct {
	repo repository.ProductRepository
	seq  repository.IDSequence
}

// NewProductUseCase builds the usecase.
func NewProductUseCase(repo repository.ProductRepository, seq repository.IDSequence) *ProductUseCase {
	return &ProductUseCase{repo: repo, seq: seq}
}

// Create adds a catalog product.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrValidation
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uc.seq.Next(memory.PrefixProduct),
		Name:      in.Name,
		Size:      in.Size,
		Rate:      in.Rate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update edits catalog fields in place.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrValidation
		}
		product.Name = *in.Name
	}
	if in.Size != nil {
		product.Size = *in.Size
	}
	if in.Rate != nil {
		product.Rate = *in.Rate
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete removes a product from the catalog. Existing sale and purchase lines
// keep their copied snapshot.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// GetByID fetches one product.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lists products, optionally filtered by a case-insensitive substring of
// name or size.
func (uc *ProductUseCase) List(search string) ([]*dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(search)
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Size), term) {
			continue
		}
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:   p.ID,
		Name: p.Name,
		Size: p.Size,
		Rate: p.Rate,
	}
}
