package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Iamyashjain/handy-sales-manager/internal/domain/entity"
)

// SeedDemo loads the sample dataset the app ships with so a fresh instance has
// something to show. IDs go through the sequence so later creations continue
// numbering after the seed.
func (s *Store) SeedDemo() error {
	d := func(y int, m time.Month, day int) time.Time {
		return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	}

	customers := []*entity.Customer{
		{
			ID:                 s.Next(PrefixCustomer),
			Name:               "ABC Corporation",
			Email:              "contact@abc.com",
			Phone:              "+91 9876543210",
			Address:            "123 Business Street, Mumbai",
			TotalPurchases:     decimal.NewFromInt(125000),
			OutstandingBalance: decimal.NewFromInt(15000),
			CreatedAt:          d(2024, 6, 1),
		},
		{
			ID:                 s.Next(PrefixCustomer),
			Name:               "Tech Solutions Ltd",
			Email:              "info@techsolutions.com",
			Phone:              "+91 9876543211",
			Address:            "456 Tech Park, Bangalore",
			TotalPurchases:     decimal.NewFromInt(89000),
			OutstandingBalance: decimal.Zero,
			CreatedAt:          d(2024, 6, 5),
		},
	}
	for _, c := range customers {
		if err := s.Customers().Create(c); err != nil {
			return err
		}
	}

	type prod struct {
		name, size string
		rate       int64
	}
	for _, p := range []prod{
		{"Premium Rice", "25kg", 1500},
		{"Wheat Flour", "10kg", 450},
		{"Cooking Oil", "5L", 650},
		{"Sugar", "1kg", 45},
		{"Tea Leaves", "500g", 280},
	} {
		product := &entity.Product{
			ID:        s.Next(PrefixProduct),
			Name:      p.name,
			Size:      p.size,
			Rate:      decimal.NewFromInt(p.rate),
			CreatedAt: d(2024, 6, 1),
			UpdatedAt: d(2024, 6, 1),
		}
		if err := s.Products().Create(product); err != nil {
			return err
		}
	}

	sales := []*entity.Sale{
		{
			ID:            s.Next(PrefixSale),
			Date:          d(2024, 6, 20),
			CustomerID:    customers[0].ID,
			CustomerName:  customers[0].Name,
			CustomerEmail: customers[0].Email,
			Items: []entity.SaleItem{
				{Name: "Premium Rice", Size: "25kg", Quantity: 5, Rate: decimal.NewFromInt(1500), Amount: decimal.NewFromInt(7500)},
				{Name: "Wheat Flour", Size: "10kg", Quantity: 3, Rate: decimal.NewFromInt(450), Amount: decimal.NewFromInt(1350)},
			},
			Subtotal:          decimal.NewFromInt(8850),
			Transport:         decimal.NewFromInt(500),
			Total:             decimal.NewFromInt(9350),
			PaidAmount:        decimal.NewFromInt(5000),
			OutstandingAmount: decimal.NewFromInt(4350),
			Status:            entity.SaleStatusPartial,
		},
		{
			ID:            s.Next(PrefixSale),
			Date:          d(2024, 6, 19),
			CustomerID:    customers[1].ID,
			CustomerName:  customers[1].Name,
			CustomerEmail: customers[1].Email,
			Items: []entity.SaleItem{
				{Name: "Cooking Oil", Size: "5L", Quantity: 10, Rate: decimal.NewFromInt(650), Amount: decimal.NewFromInt(6500)},
				{Name: "Sugar", Size: "1kg", Quantity: 20, Rate: decimal.NewFromInt(45), Amount: decimal.NewFromInt(900)},
			},
			Subtotal:          decimal.NewFromInt(7400),
			Transport:         decimal.NewFromInt(300),
			Total:             decimal.NewFromInt(7700),
			PaidAmount:        decimal.NewFromInt(7700),
			OutstandingAmount: decimal.Zero,
			Status:            entity.SaleStatusPaid,
		},
	}
	for _, sale := range sales {
		if err := s.Sales().Create(sale); err != nil {
			return err
		}
	}

	payment := &entity.Payment{
		ID:            s.Next(PrefixPayment),
		CustomerID:    customers[0].ID,
		CustomerName:  customers[0].Name,
		InvoiceID:     sales[0].ID,
		Amount:        decimal.NewFromInt(10000),
		PaymentMethod: entity.PaymentMethodUPI,
		Date:          d(2024, 6, 20),
		Notes:         "Partial payment for order #123",
	}
	if err := s.Payments().Create(payment); err != nil {
		return err
	}

	purchases := []*entity.Purchase{
		{
			ID:            s.Next(PrefixPurchase),
			Date:          d(2024, 6, 20),
			Supplier:      "ABC Suppliers Ltd",
			SupplierEmail: "orders@abcsuppliers.com",
			InvoiceNumber: "SUP-2024-001",
			Items: []entity.PurchaseItem{
				{Name: "Raw Material A", Size: "500g", Quantity: 100, UnitPrice: decimal.NewFromInt(15), Amount: decimal.NewFromInt(1500)},
				{Name: "Component B", Size: "1kg", Quantity: 50, UnitPrice: decimal.NewFromInt(25), Amount: decimal.NewFromInt(1250)},
			},
			Subtotal: decimal.NewFromInt(2750),
			Tax:      decimal.NewFromInt(275),
			Total:    decimal.NewFromInt(3025),
			Status:   entity.PurchaseStatusReceived,
		},
		{
			ID:            s.Next(PrefixPurchase),
			Date:          d(2024, 6, 19),
			Supplier:      "Global Parts Inc",
			SupplierEmail: "supply@globalparts.com",
			InvoiceNumber: "GP-INV-456",
			Items: []entity.PurchaseItem{
				{Name: "Electronic Parts", Size: "Pack", Quantity: 25, UnitPrice: decimal.NewFromInt(80), Amount: decimal.NewFromInt(2000)},
				{Name: "Packaging Materials", Size: "Roll", Quantity: 200, UnitPrice: decimal.RequireFromString("2.5"), Amount: decimal.NewFromInt(500)},
			},
			Subtotal: decimal.NewFromInt(2500),
			Tax:      decimal.NewFromInt(250),
			Total:    decimal.NewFromInt(2750),
			Status:   entity.PurchaseStatusPending,
		},
	}
	for _, p := range purchases {
		if err := s.Purchases().Create(p); err != nil {
			return err
		}
	}

	type stock struct {
		name, category string
		current, min   int64
		unitPrice      int64
		updated        time.Time
	}
	for _, it := range []stock{
		{"Product A", "Electronics", 45, 10, 100, d(2024, 6, 20)},
		{"Product B", "Electronics", 23, 15, 250, d(2024, 6, 19)},
		{"Raw Material A", "Materials", 150, 50, 15, d(2024, 6, 20)},
		{"Component B", "Components", 75, 25, 25, d(2024, 6, 20)},
		{"Product C", "Electronics", 8, 20, 150, d(2024, 6, 18)},
	} {
		unit := decimal.NewFromInt(it.unitPrice)
		item := &entity.InventoryItem{
			ID:           s.Next(PrefixInventory),
			Name:         it.name,
			Category:     it.category,
			CurrentStock: it.current,
			MinStock:     it.min,
			UnitPrice:    unit,
			TotalValue:   unit.Mul(decimal.NewFromInt(it.current)),
			LastUpdated:  it.updated,
		}
		if err := s.Inventory().Create(item); err != nil {
			return err
		}
	}

	return nil
}
