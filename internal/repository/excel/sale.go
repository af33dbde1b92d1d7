package excel

import (
	"context"

	"github.com/google/uuid"

	"github.com/bizdash/bizops-backend-go/internal/domain/inventory"
)

type saleRepository struct {
	store *Store
}

func saleFromRow(row []string) inventory.Sale {
	return inventory.Sale{
		ID:            row[0],
		Date:          parseDate(row[1]),
		ItemName:      row[2],
		Category:      row[3],
		Quantity:      parseDecimal(row[4]),
		UnitPrice:     parseDecimal(row[5]),
		Total:         parseDecimal(row[6]),
		CustomerName:  row[7],
		CustomerPhone: row[8],
		CreatedAt:     parseTimestamp(row[9]),
	}
}

func saleToRow(s inventory.Sale) []interface{} {
	return []interface{}{
		s.ID,
		formatDate(s.Date),
		s.ItemName,
		s.Category,
		s.Quantity.String(),
		s.UnitPrice.String(),
		s.Total.String(),
		s.CustomerName,
		s.CustomerPhone,
		formatTimestamp(s.CreatedAt),
	}
}

func (r *saleRepository) Create(ctx context.Context, sale inventory.Sale) (inventory.Sale, error) {
	err := r.store.write(ctx, func() error {
		sale.ID = uuid.NewString()
		return r.store.appendRow(sheetSales, saleToRow(sale))
	})
	if err != nil {
		return inventory.Sale{}, err
	}
	return sale, nil
}

func (r *saleRepository) Delete(ctx context.Context, id string) error {
	return r.store.write(ctx, func() error {
		rowNum, _, err := r.store.findRow(sheetSales, 0, id)
		if err != nil {
			return err
		}
		if rowNum == 0 {
			return inventory.ErrSaleNotFound
		}
		return r.store.removeRow(sheetSales, rowNum)
	})
}

func (r *saleRepository) List(ctx context.Context, filter inventory.MovementFilter) ([]inventory.Sale, error) {
	var sales []inventory.Sale
	err := r.store.read(ctx, func() error {
		rows, err := r.store.rows(sheetSales)
		if err != nil {
			return err
		}
		for _, row := range rows {
			s := saleFromRow(row)
			if filter.ItemName != "" && s.ItemName != filter.ItemName {
				continue
			}
			if filter.From != nil && s.Date.Before(*filter.From) {
				continue
			}
			if filter.To != nil && s.Date.After(*filter.To) {
				continue
			}
			sales = append(sales, s)
		}
		return nil
	})
	return sales, err
}
