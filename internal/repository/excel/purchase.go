package excel

import (
	"context"

	"github.com/google/uuid"

	"github.com/bizdash/bizops-backend-go/internal/domain/inventory"
)

type purchaseRepository struct {
	store *Store
}

func purchaseFromRow(row []string) inventory.Purchase {
	return inventory.Purchase{
		ID:        row[0],
		Date:      parseDate(row[1]),
		ItemName:  row[2],
		Category:  row[3],
		Quantity:  parseDecimal(row[4]),
		UnitPrice: parseDecimal(row[5]),
		Total:     parseDecimal(row[6]),
		CreatedAt: parseTimestamp(row[7]),
	}
}

func purchaseToRow(p inventory.Purchase) []interface{} {
	return []interface{}{
		p.ID,
		formatDate(p.Date),
		p.ItemName,
		p.Category,
		p.Quantity.String(),
		p.UnitPrice.String(),
		p.Total.String(),
		formatTimestamp(p.CreatedAt),
	}
}

func (r *purchaseRepository) Create(ctx context.Context, purchase inventory.Purchase) (inventory.Purchase, error) {
	err := r.store.write(ctx, func() error {
		purchase.ID = uuid.NewString()
		return r.store.appendRow(sheetPurchases, purchaseToRow(purchase))
	})
	if err != nil {
		return inventory.Purchase{}, err
	}
	return purchase, nil
}

func (r *purchaseRepository) Delete(ctx context.Context, id string) error {
	return r.store.write(ctx, func() error {
		rowNum, _, err := r.store.findRow(sheetPurchases, 0, id)
		if err != nil {
			return err
		}
		if rowNum == 0 {
			return inventory.ErrPurchaseNotFound
		}
		return r.store.removeRow(sheetPurchases, rowNum)
	})
}

func (r *purchaseRepository) List(ctx context.Context, filter inventory.MovementFilter) ([]inventory.Purchase, error) {
	var purchases []inventory.Purchase
	err := r.store.read(ctx, func() error {
		rows, err := r.store.rows(sheetPurchases)
		if err != nil {
			return err
		}
		for _, row := range rows {
			p := purchaseFromRow(row)
			if filter.ItemName != "" && p.ItemName != filter.ItemName {
				continue
			}
			if filter.From != nil && p.Date.Before(*filter.From) {
				continue
			}
			if filter.To != nil && p.Date.After(*filter.To) {
				continue
			}
			purchases = append(purchases, p)
		}
		return nil
	})
	return purchases, err
}
