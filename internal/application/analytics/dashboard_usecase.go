// Package analytics computes the dashboard metrics from live data. Nothing is
// cached or pre-aggregated; the dataset is small enough to scan on request.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Iamyashjain/handy-sales-manager/internal/application/dto"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain/repository"
)

const (
	monthLayout = "2006-01"
	dateLayout  = "2006-01-02"
	recentLimit = 6
	monthWindow = 6
)

// DashboardUseCase aggregates the home screen metrics.
type DashboardUseCase struct {
	customers repository.CustomerRepository
	products  repository.ProductRepository
	sales     repository.SaleRepository
	payments  repository.PaymentRepository
	purchases repository.PurchaseRepository
}

// NewDashboardUseCase builds the usecase.
func NewDashboardUseCase(
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	sales repository.SaleRepository,
	payments repository.PaymentRepository,
	purchases repository.PurchaseRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		customers: customers,
		products:  products,
		sales:     sales,
		payments:  payments,
		purchases: purchases,
	}
}

// Metrics computes the dashboard in one pass over each collection: revenue
// and spend totals, outstanding receivables, the last six months of
// sales-vs-purchases, and the most recent transactions.
func (uc *DashboardUseCase) Metrics() (*dto.DashboardResponse, error) {
	customers, err := uc.customers.List()
	if err != nil {
		return nil, err
	}
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	sales, err := uc.sales.List()
	if err != nil {
		return nil, err
	}
	payments, err := uc.payments.List()
	if err != nil {
		return nil, err
	}
	purchases, err := uc.purchases.List()
	if err != nil {
		return nil, err
	}

	out := &dto.DashboardResponse{
		TotalSales:       decimal.Zero,
		TotalPurchases:   decimal.Zero,
		OutstandingTotal: decimal.Zero,
		PaymentsReceived: decimal.Zero,
		CustomerCount:    len(customers),
		ProductCount:     len(products),
		SaleCount:        len(sales),
	}
	for _, c := range customers {
		out.OutstandingTotal = out.OutstandingTotal.Add(c.OutstandingBalance)
	}
	for _, p := range payments {
		out.PaymentsReceived = out.PaymentsReceived.Add(p.Amount)
	}

	salesByMonth := map[string]decimal.Decimal{}
	purchasesByMonth := map[string]decimal.Decimal{}
	recent := make([]dto.RecentTransactionDTO, 0, len(sales)+len(purchases))

	for _, s := range sales {
		out.TotalSales = out.TotalSales.Add(s.Total)
		key := s.Date.Format(monthLayout)
		salesByMonth[key] = salesByMonth[key].Add(s.Total)
		recent = append(recent, dto.RecentTransactionDTO{
			ID:           s.ID,
			Type:         "sale",
			Counterparty: s.CustomerName,
			Amount:       s.Total,
			Date:         s.Date.Format(dateLayout),
		})
	}
	for _, p := range purchases {
		out.TotalPurchases = out.TotalPurchases.Add(p.Total)
		key := p.Date.Format(monthLayout)
		purchasesByMonth[key] = purchasesByMonth[key].Add(p.Total)
		recent = append(recent, dto.RecentTransactionDTO{
			ID:           p.ID,
			Type:         "purchase",
			Counterparty: p.Supplier,
			Amount:       p.Total,
			Date:         p.Date.Format(dateLayout),
		})
	}
	out.GrossProfit = out.TotalSales.Sub(out.TotalPurchases)

	out.Monthly = lastMonths(time.Now(), monthWindow, salesByMonth, purchasesByMonth)

	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Date > recent[j].Date })
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	out.Recent = recent
	return out, nil
}

// lastMonths builds the oldest-to-newest window ending at now's month. Months
// with no activity appear with zero values so charts keep a fixed axis.
func lastMonths(now time.Time, n int, sales, purchases map[string]decimal.Decimal) []dto.MonthlyMetricDTO {
	out := make([]dto.MonthlyMetricDTO, 0, n)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(n - 1), 0)
	for i := 0; i < n; i++ {
		key := first.AddDate(0, i, 0).Format(monthLayout)
		out = append(out, dto.MonthlyMetricDTO{
			Month:     key,
			Sales:     sales[key],
			Purchases: purchases[key],
		})
	}
	return out
}
