package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iamyashjain/handy-sales-manager/internal/application/billing"
	"github.com/Iamyashjain/handy-sales-manager/internal/application/dto"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain"
	"github.com/Iamyashjain/handy-sales-manager/internal/infrastructure/memory"
)

func newCustomerUC(store *memory.Store) *billing.CustomerUseCase {
	return billing.NewCustomerUseCase(store.Customers(), store.Sales(), store.Payments(), store)
}

func TestCustomerCreate_StartsWithZeroAggregates(t *testing.T) {
	store := memory.NewStore()
	uc := newCustomerUC(store)

	customer, err := uc.Create(dto.CreateCustomerRequest{Name: "ABC Corporation", Phone: "+91 98765 43210"})
	require.NoError(t, err)

	assert.Equal(t, "CUST-001", customer.ID)
	assert.True(t, customer.TotalPurchases.IsZero())
	assert.True(t, customer.OutstandingBalance.IsZero())
}

func TestCustomerCreate_RequiresName(t *testing.T) {
	uc := newCustomerUC(memory.NewStore())

	_, err := uc.Create(dto.CreateCustomerRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCustomerUpdate_ContactFieldsOnly(t *testing.T) {
	store := memory.NewStore()
	uc := newCustomerUC(store)
	created, err := uc.Create(dto.CreateCustomerRequest{Name: "ABC Corporation"})
	require.NoError(t, err)

	phone := "+91 11111 22222"
	updated, err := uc.Update(created.ID, dto.UpdateCustomerRequest{Phone: &phone})
	require.NoError(t, err)

	assert.Equal(t, "ABC Corporation", updated.Name)
	assert.Equal(t, phone, updated.Phone)
	assert.True(t, updated.TotalPurchases.IsZero(), "aggregates are not editable")
}

func TestCustomerList_SearchByNameOrID(t *testing.T) {
	store := memory.NewStore()
	uc := newCustomerUC(store)
	_, err := uc.Create(dto.CreateCustomerRequest{Name: "ABC Corporation"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateCustomerRequest{Name: "Tech Solutions"})
	require.NoError(t, err)

	list, err := uc.List("tech")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Tech Solutions", list[0].Name)

	list, err = uc.List("cust-001")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "ABC Corporation", list[0].Name)
}

func TestCustomerStatement_CollectsSalesAndPayments(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, store.SeedDemo())
	uc := newCustomerUC(store)

	statement, err := uc.Statement("CUST-001")
	require.NoError(t, err)

	assert.Equal(t, "ABC Corporation", statement.Customer.Name)
	assert.NotEmpty(t, statement.Sales)
	assert.NotEmpty(t, statement.Payments)
	for _, s := range statement.Sales {
		assert.Equal(t, "CUST-001", s.CustomerID)
	}
	for _, p := range statement.Payments {
		assert.Equal(t, "CUST-001", p.CustomerID)
	}
}

func TestCustomerStatement_UnknownCustomer(t *testing.T) {
	uc := newCustomerUC(memory.NewStore())
	_, err := uc.Statement("CUST-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
