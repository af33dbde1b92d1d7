package inventory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizdash/bizops-backend-go/internal/domain/inventory"
	"github.com/bizdash/bizops-backend-go/internal/pkg/validator"
	"github.com/bizdash/bizops-backend-go/internal/repository/excel"
	"github.com/bizdash/bizops-backend-go/internal/store"
)

func newTestService(t *testing.T) (inventory.InventoryService, store.Store) {
	t.Helper()
	s, err := excel.NewStore(filepath.Join(t.TempDir(), "business_data.xlsx"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return NewInventoryService(s, NewCostCalculator()), s
}

func purchaseRequest(item, qty, price string) inventory.RecordPurchaseRequest {
	return inventory.RecordPurchaseRequest{
		Date:      "2024-05-20",
		ItemName:  item,
		Category:  "Grocery",
		Quantity:  qty,
		UnitPrice: price,
	}
}

func saleRequest(item, qty, price string) inventory.RecordSaleRequest {
	return inventory.RecordSaleRequest{
		Date:      "2024-05-21",
		ItemName:  item,
		Category:  "Grocery",
		Quantity:  qty,
		UnitPrice: price,
	}
}

func stockItem(t *testing.T, recordStore store.Store, name string) inventory.StockItem {
	t.Helper()
	item, err := recordStore.Stock().GetByItemName(context.Background(), name)
	require.NoError(t, err)
	require.NotNil(t, item)
	return *item
}

func TestInventoryService_RecordPurchase_SeedsNewItem(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, recordStore := newTestService(t)

	resp, err := svc.RecordPurchase(ctx, purchaseRequest("Basmati Rice 5kg", "10", "420.00"))
	require.NoError(t, err)
	assert.Equal(t, "4200", resp.Total)

	item := stockItem(t, recordStore, "Basmati Rice 5kg")
	assert.True(t, item.CurrentQuantity.Equal(decimal.RequireFromString("10")))
	assert.True(t, item.UnitCostAverage.Equal(decimal.RequireFromString("420.00")))
	assert.Equal(t, "Grocery", item.Category)
}

func TestInventoryService_RecordPurchase_RecomputesWeightedAverage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, recordStore := newTestService(t)

	_, err := svc.RecordPurchase(ctx, purchaseRequest("Widget", "10", "5.00"))
	require.NoError(t, err)
	_, err = svc.RecordPurchase(ctx, purchaseRequest("Widget", "5", "8.00"))
	require.NoError(t, err)

	item := stockItem(t, recordStore, "Widget")
	assert.True(t, item.CurrentQuantity.Equal(decimal.RequireFromString("15")))
	assert.True(t, item.UnitCostAverage.Equal(decimal.RequireFromString("6.00")))
}

func TestInventoryService_RecordPurchase_RejectsBadQuantity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.RecordPurchase(ctx, purchaseRequest("Widget", "0", "5.00"))
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "quantity")
}

func TestInventoryService_RecordSale_DecrementsStockOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, recordStore := newTestService(t)

	_, err := svc.RecordPurchase(ctx, purchaseRequest("Widget", "15", "6.00"))
	require.NoError(t, err)

	resp, err := svc.RecordSale(ctx, saleRequest("Widget", "4", "9.50"))
	require.NoError(t, err)
	assert.Equal(t, "38", resp.Total)

	// A sale moves quantity but never the average unit cost.
	item := stockItem(t, recordStore, "Widget")
	assert.True(t, item.CurrentQuantity.Equal(decimal.RequireFromString("11")))
	assert.True(t, item.UnitCostAverage.Equal(decimal.RequireFromString("6.00")))
}

func TestInventoryService_RecordSale_UnknownItem(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.RecordSale(ctx, saleRequest("Nonexistent", "1", "9.50"))
	assert.ErrorIs(t, err, inventory.ErrItemNotFound)
}

func TestInventoryService_RecordSale_InsufficientStockLeavesStockUntouched(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, recordStore := newTestService(t)

	_, err := svc.RecordPurchase(ctx, purchaseRequest("Widget", "15", "6.00"))
	require.NoError(t, err)

	_, err = svc.RecordSale(ctx, saleRequest("Widget", "20", "9.50"))
	assert.ErrorIs(t, err, inventory.ErrInsufficientStock)

	item := stockItem(t, recordStore, "Widget")
	assert.True(t, item.CurrentQuantity.Equal(decimal.RequireFromString("15")))

	sales, err := svc.ListSales(ctx, inventory.MovementFilter{})
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestInventoryService_LookupCategory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.RecordPurchase(ctx, purchaseRequest("Widget", "5", "6.00"))
	require.NoError(t, err)

	category, err := svc.LookupCategory(ctx, "Widget")
	require.NoError(t, err)
	assert.Equal(t, "Grocery", category)
}
