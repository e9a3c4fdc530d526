package memory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iamyashjain/handy-sales-manager/internal/domain"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain/entity"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain/repository"
	"github.com/Iamyashjain/handy-sales-manager/internal/infrastructure/memory"
)

func TestSequence_MonotonicAcrossDeletes(t *testing.T) {
	// IDs are issued by a counter, not by collection length, so a deleted
	// entity's ID is never reissued.
	store := memory.NewStore()
	products := store.Products()

	first := store.Next(memory.PrefixProduct)
	second := store.Next(memory.PrefixProduct)
	assert.Equal(t, "PROD-001", first)
	assert.Equal(t, "PROD-002", second)

	require.NoError(t, products.Create(&entity.Product{ID: first, Name: "a"}))
	require.NoError(t, products.Create(&entity.Product{ID: second, Name: "b"}))
	require.NoError(t, products.Delete(second))

	third := store.Next(memory.PrefixProduct)
	assert.Equal(t, "PROD-003", third, "deletion must not roll the counter back")
}

func TestSequence_IndependentPerPrefix(t *testing.T) {
	store := memory.NewStore()
	assert.Equal(t, "CUST-001", store.Next(memory.PrefixCustomer))
	assert.Equal(t, "INV-001", store.Next(memory.PrefixSale))
	assert.Equal(t, "CUST-002", store.Next(memory.PrefixCustomer))
}

func TestCustomerRepository_ClonesOnReadAndWrite(t *testing.T) {
	store := memory.NewStore()
	customers := store.Customers()

	c := &entity.Customer{ID: "CUST-001", Name: "ABC", OutstandingBalance: decimal.NewFromInt(100)}
	require.NoError(t, customers.Create(c))

	// Mutating the record we passed in must not change the stored one.
	c.Name = "mutated"
	got, err := customers.GetByID("CUST-001")
	require.NoError(t, err)
	assert.Equal(t, "ABC", got.Name)

	// Mutating a read result must not change the stored one either.
	got.OutstandingBalance = decimal.NewFromInt(999)
	again, err := customers.GetByID("CUST-001")
	require.NoError(t, err)
	assert.True(t, again.OutstandingBalance.Equal(decimal.NewFromInt(100)))
}

func TestRepositories_NotFound(t *testing.T) {
	store := memory.NewStore()

	_, err := store.Customers().GetByID("CUST-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = store.Sales().GetByID("INV-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	err = store.Payments().Delete("PAY-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSaleRepository_NewestFirstOrder(t *testing.T) {
	store := memory.NewStore()
	sales := store.Sales()

	require.NoError(t, sales.Create(&entity.Sale{ID: "INV-001"}))
	require.NoError(t, sales.Create(&entity.Sale{ID: "INV-002"}))

	list, err := sales.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "INV-002", list[0].ID, "latest sale lists first")
}

func TestRunLedger_SpansCollections(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, store.Customers().Create(&entity.Customer{ID: "CUST-001", Name: "ABC"}))

	err := store.RunLedger(func(
		customers repository.CustomerRepository,
		sales repository.SaleRepository,
		payments repository.PaymentRepository,
	) error {
		c, err := customers.GetByID("CUST-001")
		if err != nil {
			return err
		}
		c.OutstandingBalance = decimal.NewFromInt(500)
		if err := customers.Update(c); err != nil {
			return err
		}
		return sales.Create(&entity.Sale{ID: "INV-001", CustomerID: c.ID})
	})
	require.NoError(t, err)

	c, err := store.Customers().GetByID("CUST-001")
	require.NoError(t, err)
	assert.True(t, c.OutstandingBalance.Equal(decimal.NewFromInt(500)))
	_, err = store.Sales().GetByID("INV-001")
	assert.NoError(t, err)
}

func TestSeedDemo_LoadsSampleDataAndAdvancesCounters(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, store.SeedDemo())

	customers, err := store.Customers().List()
	require.NoError(t, err)
	assert.Len(t, customers, 2)

	sales, err := store.Sales().List()
	require.NoError(t, err)
	assert.Len(t, sales, 2)

	// New IDs continue after the seeded ones.
	assert.Equal(t, "CUST-003", store.Next(memory.PrefixCustomer))
	assert.Equal(t, "INV-003", store.Next(memory.PrefixSale))
}
