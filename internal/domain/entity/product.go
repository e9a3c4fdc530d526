package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is catalog reference data: a name, a pack size, and a unit rate.
// Sale and purchase line items copy these fields at creation time; later
// product edits never touch existing line items.
type Product struct {
	ID        string
	Name      string
	Size      string
	Rate      decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
