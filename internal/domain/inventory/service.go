package inventory

import "context"

// InventoryService defines business logic for stock, purchases and sales.
// RecordPurchase and RecordSale keep the stock table in step with the
// movement tables.
type InventoryService interface {
	RecordPurchase(ctx context.Context, req RecordPurchaseRequest) (MovementResponse, error)
	RecordSale(ctx context.Context, req RecordSaleRequest) (MovementResponse, error)

	ListStock(ctx context.Context) ([]StockItemResponse, error)
	ListPurchases(ctx context.Context, filter MovementFilter) ([]MovementResponse, error)
	ListSales(ctx context.Context, filter MovementFilter) ([]MovementResponse, error)

	DeletePurchase(ctx context.Context, id string) error
	DeleteSale(ctx context.Context, id string) error
	DeleteStockItem(ctx context.Context, id string) error

	// LookupCategory returns the stored category for a known item name, for
	// autofill on the data entry forms.
	LookupCategory(ctx context.Context, itemName string) (string, error)
}
