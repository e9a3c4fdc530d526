package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iamyashjain/handy-sales-manager/internal/application/dto"
	"github.com/Iamyashjain/handy-sales-manager/internal/application/usecase"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain"
)

func TestBillPreview_ComputesTotals(t *testing.T) {
	uc := usecase.NewBillUseCase()

	bill, err := uc.Preview(dto.BillRequest{
		InvoiceNumber: "BILL-42",
		Date:          "2026-08-15",
		CustomerName:  "Walk-in Customer",
		Items: []dto.BillItemRequest{
			{Description: "Premium Rice 25kg", Quantity: 2, Rate: dec("1500")},
			{Description: "Sugar 1kg", Quantity: 10, Rate: dec("45")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "BILL-42", bill.InvoiceNumber)
	assert.True(t, bill.Subtotal.Equal(dec("3450")))
	assert.True(t, bill.Tax.Equal(dec("345")))
	assert.True(t, bill.Total.Equal(dec("3795")))
	require.Len(t, bill.Items, 2)
	assert.True(t, bill.Items[0].Amount.Equal(dec("3000")))
}

func TestBillPreview_DefaultsNumberAndDate(t *testing.T) {
	uc := usecase.NewBillUseCase()

	bill, err := uc.Preview(dto.BillRequest{CustomerName: "Walk-in Customer"})
	require.NoError(t, err)

	assert.NotEmpty(t, bill.InvoiceNumber)
	assert.NotEmpty(t, bill.Date)
	assert.True(t, bill.Total.IsZero())
}

func TestBillPreview_RequiresCustomerName(t *testing.T) {
	uc := usecase.NewBillUseCase()
	_, err := uc.Preview(dto.BillRequest{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBillPreview_NegativeInputsNormalized(t *testing.T) {
	uc := usecase.NewBillUseCase()

	bill, err := uc.Preview(dto.BillRequest{
		CustomerName: "Walk-in Customer",
		Items: []dto.BillItemRequest{
			{Description: "Broken line", Quantity: -3, Rate: dec("-10")},
		},
	})
	require.NoError(t, err)
	assert.True(t, bill.Total.IsZero())
}
