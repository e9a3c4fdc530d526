package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iamyashjain/handy-sales-manager/internal/domain"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain/entity"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func testCustomer() *entity.Customer {
	return &entity.Customer{
		ID:                 "CUST-001",
		Name:               "ABC Corporation",
		Email:              "contact@abc.com",
		TotalPurchases:     decimal.Zero,
		OutstandingBalance: decimal.Zero,
		CreatedAt:          time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func saleInput(qty int64, rate, transport, paid int64) ledger.SaleInput {
	return ledger.SaleInput{
		CustomerID: "CUST-001",
		Date:       time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
		Items:      []ledger.ItemInput{{Name: "Product A", Size: "500ml", Quantity: qty, Rate: dec(rate)}},
		Transport:  dec(transport),
		PaidAmount: dec(paid),
	}
}

func paymentInput(amount int64) ledger.PaymentInput {
	return ledger.PaymentInput{
		CustomerID:    "CUST-001",
		InvoiceID:     "INV-001",
		Amount:        dec(amount),
		PaymentMethod: entity.PaymentMethodUPI,
		Date:          time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Status derivation
// ──────────────────────────────────────────────────────────────────────────────

func TestStatus_Derivation(t *testing.T) {
	cases := []struct {
		name  string
		total int64
		paid  int64
		want  string
	}{
		{"fully paid", 100, 100, entity.SaleStatusPaid},
		{"overpaid counts as paid", 100, 150, entity.SaleStatusPaid},
		{"nothing paid", 100, 0, entity.SaleStatusUnpaid},
		{"partially paid", 100, 40, entity.SaleStatusPartial},
		{"zero total zero paid", 0, 0, entity.SaleStatusPaid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ledger.Status(dec(tc.total), dec(tc.paid)))
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeSale: pure and restatable
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeSale_IdempotentRecompute(t *testing.T) {
	items := []ledger.ItemInput{
		{Name: "Premium Rice", Size: "25kg", Quantity: 5, Rate: dec(1500)},
		{Name: "Wheat Flour", Size: "10kg", Quantity: 3, Rate: dec(450)},
	}

	first := ledger.ComputeSale(items, dec(500), dec(5000))
	second := ledger.ComputeSale(items, dec(500), dec(5000))

	assert.True(t, first.Subtotal.Equal(dec(8850)))
	assert.True(t, first.Total.Equal(dec(9350)))
	assert.True(t, first.Outstanding.Equal(dec(4350)))
	assert.Equal(t, entity.SaleStatusPartial, first.Status)

	// Same input, same figures: no hidden state.
	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.Total.Equal(second.Total))
	assert.True(t, first.Outstanding.Equal(second.Outstanding))
	assert.Equal(t, first.Status, second.Status)
}

func TestComputeSale_EmptyItemsAndZeroQuantities(t *testing.T) {
	// Scenario E: empty items or all-zero quantities must not fail; the total
	// collapses to the transport charge.
	fig := ledger.ComputeSale(nil, dec(500), decimal.Zero)
	assert.True(t, fig.Subtotal.IsZero())
	assert.True(t, fig.Total.Equal(dec(500)))
	assert.True(t, fig.Outstanding.Equal(dec(500)))
	assert.Equal(t, entity.SaleStatusUnpaid, fig.Status)

	fig = ledger.ComputeSale([]ledger.ItemInput{{Name: "x", Quantity: 0, Rate: dec(100)}}, decimal.Zero, decimal.Zero)
	assert.True(t, fig.Subtotal.IsZero())
	assert.True(t, fig.Total.IsZero())
	assert.Equal(t, entity.SaleStatusPaid, fig.Status)
}

func TestComputeSale_NegativeInputsNormalizedToZero(t *testing.T) {
	// The permissive default-to-zero policy, made explicit instead of an
	// implicit parse fallback.
	fig := ledger.ComputeSale(
		[]ledger.ItemInput{{Name: "x", Quantity: -3, Rate: dec(-10)}},
		dec(-500), dec(-100),
	)
	assert.True(t, fig.Subtotal.IsZero())
	assert.True(t, fig.Transport.IsZero())
	assert.True(t, fig.PaidAmount.IsZero())
	assert.True(t, fig.Total.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Scenarios A–E from the ledger model
// ──────────────────────────────────────────────────────────────────────────────

func TestLedger_ScenarioFlow(t *testing.T) {
	customer := testCustomer()

	// Scenario A: 5 × 10000 + 500 transport, nothing paid.
	sale, customer, err := ledger.ApplySaleCreate(customer, saleInput(5, 10000, 500, 0))
	require.NoError(t, err)
	assert.True(t, sale.Total.Equal(dec(50500)))
	assert.True(t, sale.OutstandingAmount.Equal(dec(50500)))
	assert.Equal(t, entity.SaleStatusUnpaid, sale.Status)
	assert.True(t, customer.OutstandingBalance.Equal(dec(50500)))
	assert.True(t, customer.TotalPurchases.Equal(dec(50500)))

	// Scenario B: payment of 20000.
	payB, customer, err := ledger.ApplyPaymentCreate(customer, paymentInput(20000))
	require.NoError(t, err)
	assert.True(t, customer.OutstandingBalance.Equal(dec(30500)))

	// Scenario C: payment of 40000 exceeds the remaining balance; clamp to 0.
	_, customer, err = ledger.ApplyPaymentCreate(customer, paymentInput(40000))
	require.NoError(t, err)
	assert.True(t, customer.OutstandingBalance.IsZero(), "over-payment must clamp to zero, not go negative")

	// TotalPurchases is untouched by payments.
	assert.True(t, customer.TotalPurchases.Equal(dec(50500)))

	// Scenario D variant: deleting the Scenario B payment adds its amount back.
	customer, err = ledger.ApplyPaymentDelete(payB, customer)
	require.NoError(t, err)
	assert.True(t, customer.OutstandingBalance.Equal(dec(20000)))
}

func TestApplyPaymentDelete_ReversalSymmetry(t *testing.T) {
	// Scenario D proper: create then delete with no intervening clamp events
	// restores the original balance exactly.
	customer := testCustomer()
	_, customer, err := ledger.ApplySaleCreate(customer, saleInput(5, 10000, 500, 0))
	require.NoError(t, err)

	pay, customer, err := ledger.ApplyPaymentCreate(customer, paymentInput(20000))
	require.NoError(t, err)
	assert.True(t, customer.OutstandingBalance.Equal(dec(30500)))

	customer, err = ledger.ApplyPaymentDelete(pay, customer)
	require.NoError(t, err)
	assert.True(t, customer.OutstandingBalance.Equal(dec(50500)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Sale create/edit/delete
// ──────────────────────────────────────────────────────────────────────────────

func TestApplySaleCreate_NilCustomer(t *testing.T) {
	_, _, err := ledger.ApplySaleCreate(nil, saleInput(1, 100, 0, 0))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApplySaleCreate_DoesNotMutateInputs(t *testing.T) {
	customer := testCustomer()
	before := customer.OutstandingBalance

	_, updated, err := ledger.ApplySaleCreate(customer, saleInput(2, 100, 0, 0))
	require.NoError(t, err)

	assert.True(t, customer.OutstandingBalance.Equal(before), "input customer must stay untouched")
	assert.True(t, updated.OutstandingBalance.Equal(dec(200)))
}

func TestApplySaleCreate_SnapshotsCustomerContact(t *testing.T) {
	customer := testCustomer()
	sale, _, err := ledger.ApplySaleCreate(customer, saleInput(1, 100, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, "ABC Corporation", sale.CustomerName)
	assert.Equal(t, "contact@abc.com", sale.CustomerEmail)
}

func TestApplySaleEdit_SameCustomerAdjustsByDelta(t *testing.T) {
	customer := testCustomer()
	sale, customer, err := ledger.ApplySaleCreate(customer, saleInput(5, 10000, 500, 0))
	require.NoError(t, err)

	// Edit down to 3 × 10000, no transport, 10000 paid.
	in := saleInput(3, 10000, 0, 10000)
	edited, updated, err := ledger.ApplySaleEdit(sale, in, customer, customer)
	require.NoError(t, err)
	require.Len(t, updated, 1)

	assert.True(t, edited.Total.Equal(dec(30000)))
	assert.True(t, edited.OutstandingAmount.Equal(dec(20000)))
	assert.Equal(t, entity.SaleStatusPartial, edited.Status)

	// TotalPurchases: 50500 + (30000 − 50500) = 30000
	assert.True(t, updated[0].TotalPurchases.Equal(dec(30000)))
	// Outstanding: 50500 + (20000 − 50500) = 20000
	assert.True(t, updated[0].OutstandingBalance.Equal(dec(20000)))
}

func TestApplySaleEdit_CrossCustomerReassignment(t *testing.T) {
	// Editing the sale onto another customer reverses the old figures on the
	// old owner and adds the new figures to the new owner.
	alice := testCustomer()
	sale, alice, err := ledger.ApplySaleCreate(alice, saleInput(5, 10000, 500, 0))
	require.NoError(t, err)
	sale.ID = "INV-001"

	bob := &entity.Customer{
		ID:                 "CUST-002",
		Name:               "Tech Solutions Ltd",
		Email:              "info@techsolutions.com",
		TotalPurchases:     decimal.Zero,
		OutstandingBalance: decimal.Zero,
	}

	in := ledger.SaleInput{
		CustomerID: bob.ID,
		Date:       sale.Date,
		Items:      []ledger.ItemInput{{Name: "Product A", Quantity: 2, Rate: dec(1000)}},
		Transport:  decimal.Zero,
		PaidAmount: dec(500),
	}
	edited, updated, err := ledger.ApplySaleEdit(sale, in, alice, bob)
	require.NoError(t, err)
	require.Len(t, updated, 2)

	from, to := updated[0], updated[1]
	assert.True(t, from.TotalPurchases.IsZero())
	assert.True(t, from.OutstandingBalance.IsZero())
	assert.True(t, to.TotalPurchases.Equal(dec(2000)))
	assert.True(t, to.OutstandingBalance.Equal(dec(1500)))

	// The snapshot follows the new owner on reassignment.
	assert.Equal(t, "CUST-002", edited.CustomerID)
	assert.Equal(t, "Tech Solutions Ltd", edited.CustomerName)
	assert.Equal(t, "INV-001", edited.ID, "the sale keeps its id across edits")
}

func TestApplySaleDelete_ReversesAggregates(t *testing.T) {
	customer := testCustomer()
	sale, customer, err := ledger.ApplySaleCreate(customer, saleInput(5, 10000, 500, 20000))
	require.NoError(t, err)

	customer, err = ledger.ApplySaleDelete(sale, customer)
	require.NoError(t, err)
	assert.True(t, customer.TotalPurchases.IsZero())
	assert.True(t, customer.OutstandingBalance.IsZero())
}

func TestApplySaleDelete_AfterClampCanGoNegative(t *testing.T) {
	// Documented clamp-drift: an over-payment clamped to zero loses
	// information, so deleting the sale afterwards drives the balance
	// negative. This mirrors the incremental bookkeeping model and is the
	// accepted lossy behavior.
	customer := testCustomer()
	sale, customer, err := ledger.ApplySaleCreate(customer, saleInput(1, 1000, 0, 0))
	require.NoError(t, err)

	_, customer, err = ledger.ApplyPaymentCreate(customer, paymentInput(1500))
	require.NoError(t, err)
	assert.True(t, customer.OutstandingBalance.IsZero())

	customer, err = ledger.ApplySaleDelete(sale, customer)
	require.NoError(t, err)
	assert.True(t, customer.OutstandingBalance.Equal(dec(-1000)),
		"unclamped delete after a clamped over-payment exposes the drift")
}

// ──────────────────────────────────────────────────────────────────────────────
// Payments
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyPaymentCreate_RejectsNonPositiveAmount(t *testing.T) {
	customer := testCustomer()
	for _, amount := range []int64{0, -10} {
		in := paymentInput(amount)
		_, _, err := ledger.ApplyPaymentCreate(customer, in)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestApplyPaymentEdit_AdjustsByDifference(t *testing.T) {
	customer := testCustomer()
	_, customer, err := ledger.ApplySaleCreate(customer, saleInput(1, 10000, 0, 0))
	require.NoError(t, err)

	pay, customer, err := ledger.ApplyPaymentCreate(customer, paymentInput(4000))
	require.NoError(t, err)
	assert.True(t, customer.OutstandingBalance.Equal(dec(6000)))

	in := paymentInput(7000)
	edited, customer, err := ledger.ApplyPaymentEdit(pay, in, customer)
	require.NoError(t, err)
	assert.True(t, edited.Amount.Equal(dec(7000)))
	// 6000 − (7000 − 4000) = 3000
	assert.True(t, customer.OutstandingBalance.Equal(dec(3000)))
}

func TestApplyPaymentEdit_ClampDrift(t *testing.T) {
	// Known approximation of the balance identity: lowering a payment after a
	// clamp event does not restore the pre-clamp remainder. Asserted here as
	// the documented behavior, not a bug.
	customer := testCustomer()
	_, customer, err := ledger.ApplySaleCreate(customer, saleInput(1, 1000, 0, 0))
	require.NoError(t, err)

	pay, customer, err := ledger.ApplyPaymentCreate(customer, paymentInput(1500))
	require.NoError(t, err)
	assert.True(t, customer.OutstandingBalance.IsZero())

	// Recompute-from-scratch would give max(0, 1000 − 800) = 200. The
	// incremental model gives max(0, 0 − (800 − 1500)) = 700.
	in := paymentInput(800)
	_, customer, err = ledger.ApplyPaymentEdit(pay, in, customer)
	require.NoError(t, err)
	assert.True(t, customer.OutstandingBalance.Equal(dec(700)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Balance identities over operation sequences (properties P1/P2)
// ──────────────────────────────────────────────────────────────────────────────

func TestLedger_BalanceIdentityWithoutClampEvents(t *testing.T) {
	// As long as no payment overshoots the balance, the incremental model and
	// the Σsales − Σpayments identity agree exactly.
	customer := testCustomer()

	var salesTotal, paymentsTotal decimal.Decimal
	sales := make([]*entity.Sale, 0, 3)

	for _, qty := range []int64{2, 5, 1} {
		var sale *entity.Sale
		var err error
		sale, customer, err = ledger.ApplySaleCreate(customer, saleInput(qty, 1000, 0, 0))
		require.NoError(t, err)
		sales = append(sales, sale)
		salesTotal = salesTotal.Add(sale.Total)
	}
	for _, amount := range []int64{500, 1200} {
		var err error
		_, customer, err = ledger.ApplyPaymentCreate(customer, paymentInput(amount))
		require.NoError(t, err)
		paymentsTotal = paymentsTotal.Add(dec(amount))
	}

	// P1: balance == Σ totals − Σ payments (no clamp fired).
	assert.True(t, customer.OutstandingBalance.Equal(salesTotal.Sub(paymentsTotal)))

	// P2: totalPurchases == Σ totals over current sales; deleting one keeps
	// the identity over the remaining set.
	assert.True(t, customer.TotalPurchases.Equal(salesTotal))
	var err error
	customer, err = ledger.ApplySaleDelete(sales[1], customer)
	require.NoError(t, err)
	assert.True(t, customer.TotalPurchases.Equal(salesTotal.Sub(sales[1].Total)))
}
