package dto

import "github.com/shopspring/decimal"

// DashboardResponse key metrics for GET /api/dashboard, computed from live
// data on every request.
type DashboardResponse struct {
	TotalSales       decimal.Decimal        `json:"total_sales"`
	TotalPurchases   decimal.Decimal        `json:"total_purchases"`
	GrossProfit      decimal.Decimal        `json:"gross_profit"`
	OutstandingTotal decimal.Decimal        `json:"outstanding_total"`
	PaymentsReceived decimal.Decimal        `json:"payments_received"`
	CustomerCount    int                    `json:"customer_count"`
	ProductCount     int                    `json:"product_count"`
	SaleCount        int                    `json:"sale_count"`
	Monthly          []MonthlyMetricDTO     `json:"monthly"`
	Recent           []RecentTransactionDTO `json:"recent_transactions"`
}

// MonthlyMetricDTO one month of the sales-vs-purchases series.
type MonthlyMetricDTO struct {
	Month     string          `json:"month"` // YYYY-MM
	Sales     decimal.Decimal `json:"sales"`
	Purchases decimal.Decimal `json:"purchases"`
}

// RecentTransactionDTO one row of the recent-activity widget: a sale or a
// purchase, merged and sorted newest first.
type RecentTransactionDTO struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"` // "sale" | "purchase"
	Counterparty string          `json:"counterparty"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"`
}
