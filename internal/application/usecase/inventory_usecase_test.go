package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iamyashjain/handy-sales-manager/internal/application/dto"
	"github.com/Iamyashjain/handy-sales-manager/internal/application/usecase"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain"
	"github.com/Iamyashjain/handy-sales-manager/internal/infrastructure/memory"
)

func seededInventoryUC(t *testing.T) (*memory.Store, *usecase.InventoryUseCase) {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.SeedDemo())
	return store, usecase.NewInventoryUseCase(store.Inventory())
}

func TestInventorySummary(t *testing.T) {
	_, uc := seededInventoryUC(t)

	summary, err := uc.Summary()
	require.NoError(t, err)

	assert.Equal(t, 5, summary.TotalItems)
	// 45*100 + 23*250 + 150*15 + 75*25 + 8*150 = 15575
	assert.True(t, summary.TotalValue.Equal(dec("15575")), "total value = %s", summary.TotalValue)
	assert.Equal(t, 1, summary.LowStockCount, "only Product C sits at or below its minimum")
	assert.Equal(t, []string{"Components", "Electronics", "Materials"}, summary.Categories)
}

func TestInventoryList_Filters(t *testing.T) {
	_, uc := seededInventoryUC(t)

	list, err := uc.List("", "Electronics")
	require.NoError(t, err)
	assert.Len(t, list, 3)

	list, err = uc.List("raw", "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Raw Material A", list[0].Name)

	list, err = uc.List("raw", "Electronics")
	require.NoError(t, err)
	assert.Empty(t, list, "filters combine")
}

func TestInventoryList_StockStatusDerivation(t *testing.T) {
	_, uc := seededInventoryUC(t)

	list, err := uc.List("", "")
	require.NoError(t, err)

	byName := map[string]string{}
	for _, it := range list {
		byName[it.Name] = it.StockStatus
	}
	assert.Equal(t, "good", byName["Product A"], "45 vs min 10")
	assert.Equal(t, "medium", byName["Product B"], "23 vs min 15 (within 1.5x)")
	assert.Equal(t, "low", byName["Product C"], "8 vs min 20")
}

func TestInventoryAdjust_FlooredAtZero(t *testing.T) {
	store, uc := seededInventoryUC(t)

	item, err := uc.Adjust("ITM-001", dto.AdjustStockRequest{Delta: -100})
	require.NoError(t, err)

	assert.Equal(t, int64(0), item.CurrentStock)
	assert.True(t, item.TotalValue.IsZero())

	stored, err := store.Inventory().GetByID("ITM-001")
	require.NoError(t, err)
	assert.Equal(t, int64(0), stored.CurrentStock)
}

func TestInventoryAdjust_RecomputesValue(t *testing.T) {
	_, uc := seededInventoryUC(t)

	item, err := uc.Adjust("ITM-001", dto.AdjustStockRequest{Delta: 5})
	require.NoError(t, err)

	assert.Equal(t, int64(50), item.CurrentStock)
	assert.True(t, item.TotalValue.Equal(dec("5000")))
}

func TestInventoryAdjust_UnknownItem(t *testing.T) {
	_, uc := seededInventoryUC(t)
	_, err := uc.Adjust("ITM-404", dto.AdjustStockRequest{Delta: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
