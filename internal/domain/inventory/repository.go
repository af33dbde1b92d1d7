package inventory

import (
	"context"
	"time"
)

type StockRepository interface {
	GetByItemName(ctx context.Context, itemName string) (*StockItem, error)
	Create(ctx context.Context, item StockItem) (StockItem, error)
	Update(ctx context.Context, item StockItem) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]StockItem, error)
}

type PurchaseRepository interface {
	Create(ctx context.Context, purchase Purchase) (Purchase, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter MovementFilter) ([]Purchase, error)
}

type SaleRepository interface {
	Create(ctx context.Context, sale Sale) (Sale, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter MovementFilter) ([]Sale, error)
}

// MovementFilter narrows purchase and sale listings.
type MovementFilter struct {
	ItemName string
	From     *time.Time
	To       *time.Time
}
