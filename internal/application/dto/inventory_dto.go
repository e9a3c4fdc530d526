package dto

import "github.com/shopspring/decimal"

// InventoryItemResponse stocked item with derived value and status.
type InventoryItemResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	CurrentStock int64           `json:"current_stock"`
	MinStock     int64           `json:"min_stock"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalValue   decimal.Decimal `json:"total_value"`
	StockStatus  string          `json:"stock_status"`
	LastUpdated  string          `json:"last_updated"`
}

// InventorySummaryResponse header cards of the inventory screen.
type InventorySummaryResponse struct {
	TotalItems    int             `json:"total_items"`
	TotalValue    decimal.Decimal `json:"total_value"`
	LowStockCount int             `json:"low_stock_count"`
	Categories    []string        `json:"categories"`
}

// AdjustStockRequest body for POST /api/inventory/:id/adjust. Delta may be
// negative; the resulting stock is floored at zero.
type AdjustStockRequest struct {
	Delta int64 `json:"delta"`
}
