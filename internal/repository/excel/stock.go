package excel

import (
	"context"

	"github.com/google/uuid"

	"github.com/bizdash/bizops-backend-go/internal/domain/inventory"
)

type stockRepository struct {
	store *Store
}

func stockFromRow(row []string) inventory.StockItem {
	return inventory.StockItem{
		ID:              row[0],
		ItemName:        row[1],
		Category:        row[2],
		CurrentQuantity: parseDecimal(row[3]),
		UnitCostAverage: parseDecimal(row[4]),
		MinimumStock:    parseDecimal(row[5]),
		CreatedAt:       parseTimestamp(row[6]),
		UpdatedAt:       parseTimestamp(row[7]),
	}
}

func stockToRow(item inventory.StockItem) []interface{} {
	return []interface{}{
		item.ID,
		item.ItemName,
		item.Category,
		item.CurrentQuantity.String(),
		item.UnitCostAverage.String(),
		item.MinimumStock.String(),
		formatTimestamp(item.CreatedAt),
		formatTimestamp(item.UpdatedAt),
	}
}

func (r *stockRepository) GetByItemName(ctx context.Context, itemName string) (*inventory.StockItem, error) {
	var result *inventory.StockItem
	err := r.store.read(ctx, func() error {
		rowNum, row, err := r.store.findRow(sheetStock, 1, itemName)
		if err != nil {
			return err
		}
		if rowNum == 0 {
			return nil
		}
		item := stockFromRow(row)
		result = &item
		return nil
	})
	return result, err
}

func (r *stockRepository) Create(ctx context.Context, item inventory.StockItem) (inventory.StockItem, error) {
	err := r.store.write(ctx, func() error {
		item.ID = uuid.NewString()
		return r.store.appendRow(sheetStock, stockToRow(item))
	})
	if err != nil {
		return inventory.StockItem{}, err
	}
	return item, nil
}

func (r *stockRepository) Update(ctx context.Context, item inventory.StockItem) error {
	return r.store.write(ctx, func() error {
		rowNum, _, err := r.store.findRow(sheetStock, 0, item.ID)
		if err != nil {
			return err
		}
		if rowNum == 0 {
			return inventory.ErrItemNotFound
		}
		return r.store.setRow(sheetStock, rowNum, stockToRow(item))
	})
}

func (r *stockRepository) Delete(ctx context.Context, id string) error {
	return r.store.write(ctx, func() error {
		rowNum, _, err := r.store.findRow(sheetStock, 0, id)
		if err != nil {
			return err
		}
		if rowNum == 0 {
			return inventory.ErrItemNotFound
		}
		return r.store.removeRow(sheetStock, rowNum)
	})
}

func (r *stockRepository) List(ctx context.Context) ([]inventory.StockItem, error) {
	var items []inventory.StockItem
	err := r.store.read(ctx, func() error {
		rows, err := r.store.rows(sheetStock)
		if err != nil {
			return err
		}
		for _, row := range rows {
			items = append(items, stockFromRow(row))
		}
		return nil
	})
	return items, err
}
