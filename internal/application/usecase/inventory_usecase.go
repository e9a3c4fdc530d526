package usecase

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Iamyashjain/handy-sales-manager/internal/application/dto"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain/entity"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain/repository"
)

// InventoryUseCase stock screen operations.
type InventoryUseCase struct {
	repo repository.InventoryRepository
}

// NewInventoryUseCase builds the usecase.
func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// List lists stocked items, optionally filtered by a name substring and/or an
// exact category.
func (uc *InventoryUseCase) List(search, category string) ([]*dto.InventoryItemResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(search)
	out := make([]*dto.InventoryItemResponse, 0, len(list))
	for _, item := range list {
		if term != "" && !strings.Contains(strings.ToLower(item.Name), term) {
			continue
		}
		if category != "" && !strings.EqualFold(item.Category, category) {
			continue
		}
		out = append(out, toInventoryItemResponse(item))
	}
	return out, nil
}

// Summary aggregates the header cards: item count, total stock value, how many
// items sit at or below their minimum, and the distinct categories.
func (uc *InventoryUseCase) Summary() (*dto.InventorySummaryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	low := 0
	seen := map[string]bool{}
	categories := []string{}
	for _, item := range list {
		total = total.Add(item.TotalValue)
		if item.StockStatus() == entity.StockStatusLow {
			low++
		}
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	sort.Strings(categories)
	return &dto.InventorySummaryResponse{
		TotalItems:    len(list),
		TotalValue:    total,
		LowStockCount: low,
		Categories:    categories,
	}, nil
}

// Adjust moves an item's stock by delta, floored at zero, and recomputes the
// derived value.
func (uc *InventoryUseCase) Adjust(id string, in dto.AdjustStockRequest) (*dto.InventoryItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	item.CurrentStock += in.Delta
	if item.CurrentStock < 0 {
		item.CurrentStock = 0
	}
	item.TotalValue = item.UnitPrice.Mul(decimal.NewFromInt(item.CurrentStock))
	item.LastUpdated = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toInventoryItemResponse(item), nil
}

func toInventoryItemResponse(i *entity.InventoryItem) *dto.InventoryItemResponse {
	return &dto.InventoryItemResponse{
		ID:           i.ID,
		Name:         i.Name,
		Category:     i.Category,
		CurrentStock: i.CurrentStock,
		MinStock:     i.MinStock,
		UnitPrice:    i.UnitPrice,
		TotalValue:   i.TotalValue,
		StockStatus:  i.StockStatus(),
		LastUpdated:  i.LastUpdated.Format(purchaseDateLayout),
	}
}
