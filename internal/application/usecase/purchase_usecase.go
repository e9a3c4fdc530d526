package usecase

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Iamyashjain/handy-sales-manager/internal/application/dto"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain/entity"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain/repository"
	"github.com/Iamyashjain/handy-sales-manager/internal/infrastructure/memory"
	"github.com/Iamyashjain/handy-sales-manager/pkg/logger"
)

// purchaseTaxRate is the flat tax applied on the purchase subtotal.
var purchaseTaxRate = decimal.NewFromFloat(0.10)

const purchaseDateLayout = "2006-01-02"

// PurchaseUseCase supplier purchase operations. Purchases never touch the
// customer ledger; receiving one moves stock in the inventory instead.
type PurchaseUseCase struct {
	repo      repository.PurchaseRepository
	products  repository.ProductRepository
	inventory repository.InventoryRepository
	seq       repository.IDSequence
	log       *logger.Logger
}

// NewPurchaseUseCase builds the usecase.
func NewPurchaseUseCase(
	repo repository.PurchaseRepository,
	products repository.ProductRepository,
	inventory repository.InventoryRepository,
	seq repository.IDSequence,
	log *logger.Logger,
) *PurchaseUseCase {
	return &PurchaseUseCase{repo: repo, products: products, inventory: inventory, seq: seq, log: log}
}

// Create records a pending purchase with subtotal, flat tax, and total derived
// from the lines.
func (uc *PurchaseUseCase) Create(in dto.PurchaseRequest) (*dto.PurchaseResponse, error) {
	if strings.TrimSpace(in.Supplier) == "" {
		return nil, domain.ErrValidation
	}

	items := make([]entity.PurchaseItem, 0, len(in.Items))
	subtotal := decimal.Zero
	for _, it := range in.Items {
		line := entity.PurchaseItem{
			Name:      it.Name,
			Size:      it.Size,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		}
		if it.ProductID != "" {
			product, err := uc.products.GetByID(it.ProductID)
			if err != nil {
				return nil, err
			}
			if line.Name == "" {
				line.Name = product.Name
			}
			if line.Size == "" {
				line.Size = product.Size
			}
			if line.UnitPrice.Equal(decimal.Zero) {
				line.UnitPrice = product.Rate
			}
		}
		if line.Quantity < 0 {
			line.Quantity = 0
		}
		if line.UnitPrice.IsNegative() {
			line.UnitPrice = decimal.Zero
		}
		line.Amount = line.UnitPrice.Mul(decimal.NewFromInt(line.Quantity))
		subtotal = subtotal.Add(line.Amount)
		items = append(items, line)
	}

	tax := subtotal.Mul(purchaseTaxRate)
	purchase := &entity.Purchase{
		ID:            uc.seq.Next(memory.PrefixPurchase),
		Date:          time.Now(),
		Supplier:      in.Supplier,
		SupplierEmail: in.SupplierEmail,
		InvoiceNumber: in.InvoiceNumber,
		Items:         items,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         subtotal.Add(tax),
		Status:        entity.PurchaseStatusPending,
	}
	if err := uc.repo.Create(purchase); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("purchase_id", purchase.ID).
		Str("supplier", purchase.Supplier).
		Str("total", purchase.Total.String()).
		Msg("purchase created")
	return toPurchaseResponse(purchase), nil
}

// MarkReceived flips a pending purchase to received and books the purchased
// quantities into inventory. Inventory records carry no size, so lines are
// matched by name alone (case-insensitive): purchase lines that differ only
// in size accumulate into the same stock record. Unknown names are stocked as
// new inventory records in the "General" category.
func (uc *PurchaseUseCase) MarkReceived(id string) (*dto.PurchaseResponse, error) {
	purchase, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase.Status == entity.PurchaseStatusReceived {
		return nil, domain.ErrConflict
	}

	stocked, err := uc.inventory.List()
	if err != nil {
		return nil, err
	}
	byName := make(map[string]*entity.InventoryItem, len(stocked))
	for _, item := range stocked {
		byName[strings.ToLower(item.Name)] = item
	}

	now := time.Now()
	for _, line := range purchase.Items {
		if item, ok := byName[strings.ToLower(line.Name)]; ok {
			item.CurrentStock += line.Quantity
			item.TotalValue = item.UnitPrice.Mul(decimal.NewFromInt(item.CurrentStock))
			item.LastUpdated = now
			if err := uc.inventory.Update(item); err != nil {
				return nil, err
			}
			continue
		}
		item := &entity.InventoryItem{
			ID:           uc.seq.Next(memory.PrefixInventory),
			Name:         line.Name,
			Category:     "General",
			CurrentStock: line.Quantity,
			MinStock:     0,
			UnitPrice:    line.UnitPrice,
			TotalValue:   line.UnitPrice.Mul(decimal.NewFromInt(line.Quantity)),
			LastUpdated:  now,
		}
		if err := uc.inventory.Create(item); err != nil {
			return nil, err
		}
		byName[strings.ToLower(item.Name)] = item
	}

	purchase.Status = entity.PurchaseStatusReceived
	if err := uc.repo.Update(purchase); err != nil {
		return nil, err
	}

	uc.log.Info().Str("purchase_id", purchase.ID).Msg("purchase received")
	return toPurchaseResponse(purchase), nil
}

// GetByID fetches one purchase.
func (uc *PurchaseUseCase) GetByID(id string) (*dto.PurchaseResponse, error) {
	purchase, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(purchase), nil
}

// List lists purchases, optionally filtered by supplier, ID, or invoice
// number.
func (uc *PurchaseUseCase) List(search string) ([]*dto.PurchaseResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(search)
	out := make([]*dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Supplier), term) &&
			!strings.Contains(strings.ToLower(p.ID), term) &&
			!strings.Contains(strings.ToLower(p.InvoiceNumber), term) {
			continue
		}
		out = append(out, toPurchaseResponse(p))
	}
	return out, nil
}

func toPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	items := make([]dto.PurchaseItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, dto.PurchaseItemResponse{
			Name:      it.Name,
			Size:      it.Size,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Amount:    it.Amount,
		})
	}
	return &dto.PurchaseResponse{
		ID:            p.ID,
		Date:          p.Date.Format(purchaseDateLayout),
		Supplier:      p.Supplier,
		SupplierEmail: p.SupplierEmail,
		InvoiceNumber: p.InvoiceNumber,
		Items:         items,
		Subtotal:      p.Subtotal,
		Tax:           p.Tax,
		Total:         p.Total,
		Status:        p.Status,
	}
}
