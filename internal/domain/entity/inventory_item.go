package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock status thresholds relative to MinStock.
const (
	StockStatusLow    = "low"    // current <= min
	StockStatusMedium = "medium" // current <= 1.5 * min
	StockStatusGood   = "good"
)

// InventoryItem is one stocked item. TotalValue = CurrentStock × UnitPrice.
type InventoryItem struct {
	ID           string
	Name         string
	Category     string
	CurrentStock int64
	MinStock     int64
	UnitPrice    decimal.Decimal
	TotalValue   decimal.Decimal
	LastUpdated  time.Time
}

// StockStatus derives the low/medium/good flag from current vs minimum stock.
func (i *InventoryItem) StockStatus() string {
	if i.CurrentStock <= i.MinStock {
		return StockStatusLow
	}
	// medium band tops out at 1.5x the minimum
	if float64(i.CurrentStock) <= float64(i.MinStock)*1.5 {
		return StockStatusMedium
	}
	return StockStatusGood
}

// Clone returns a copy safe to mutate without touching the stored record.
func (i *InventoryItem) Clone() *InventoryItem {
	cp := *i
	return &cp
}
