package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizdash/bizops-backend-go/internal/domain/inventory"
	"github.com/bizdash/bizops-backend-go/internal/store"
)

type InventoryServiceImpl struct {
	store      store.Store
	calculator *CostCalculator
}

func NewInventoryService(recordStore store.Store, calculator *CostCalculator) inventory.InventoryService {
	return &InventoryServiceImpl{
		store:      recordStore,
		calculator: calculator,
	}
}

// RecordPurchase implements inventory.InventoryService. The purchase row and
// the stock adjustment are written in one atomic step.
func (s *InventoryServiceImpl) RecordPurchase(ctx context.Context, req inventory.RecordPurchaseRequest) (inventory.MovementResponse, error) {
	if err := req.Validate(); err != nil {
		return inventory.MovementResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	quantity, _ := decimal.NewFromString(req.Quantity)
	unitPrice, _ := decimal.NewFromString(req.UnitPrice)

	purchase := inventory.Purchase{
		Date:      date,
		ItemName:  req.ItemName,
		Category:  req.Category,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Total:     quantity.Mul(unitPrice).Round(2),
		CreatedAt: time.Now().UTC(),
	}

	err := s.store.Atomic(ctx, func(ctx context.Context) error {
		if err := s.applyPurchaseToStock(ctx, purchase); err != nil {
			return err
		}

		created, err := s.store.Purchases().Create(ctx, purchase)
		if err != nil {
			return err
		}
		purchase = created
		return nil
	})
	if err != nil {
		return inventory.MovementResponse{}, err
	}

	return mapPurchaseToResponse(purchase), nil
}

// applyPurchaseToStock upserts the stock row for a purchase. A first purchase
// seeds the item with the purchase quantity and price; later purchases add
// quantity and recompute the weighted average cost.
func (s *InventoryServiceImpl) applyPurchaseToStock(ctx context.Context, purchase inventory.Purchase) error {
	stockRepo := s.store.Stock()

	item, err := stockRepo.GetByItemName(ctx, purchase.ItemName)
	if err != nil {
		return fmt.Errorf("failed to look up stock item: %w", err)
	}

	now := time.Now().UTC()
	if item == nil {
		_, err := stockRepo.Create(ctx, inventory.StockItem{
			ItemName:        purchase.ItemName,
			Category:        purchase.Category,
			CurrentQuantity: purchase.Quantity,
			UnitCostAverage: purchase.UnitPrice.Round(2),
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if err != nil {
			return fmt.Errorf("failed to create stock item: %w", err)
		}
		return nil
	}

	item.UnitCostAverage = s.calculator.WeightedAverage(
		item.CurrentQuantity, item.UnitCostAverage,
		purchase.Quantity, purchase.UnitPrice,
	)
	item.CurrentQuantity = item.CurrentQuantity.Add(purchase.Quantity)
	item.UpdatedAt = now

	if err := stockRepo.Update(ctx, *item); err != nil {
		return fmt.Errorf("failed to update stock item: %w", err)
	}
	return nil
}

// RecordSale implements inventory.InventoryService. The sale is rejected when
// the item is unknown or the quantity exceeds what is on hand; otherwise the
// stock row is decremented and the sale row inserted together. The average
// unit cost is untouched by sales.
func (s *InventoryServiceImpl) RecordSale(ctx context.Context, req inventory.RecordSaleRequest) (inventory.MovementResponse, error) {
	if err := req.Validate(); err != nil {
		return inventory.MovementResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	quantity, _ := decimal.NewFromString(req.Quantity)
	unitPrice, _ := decimal.NewFromString(req.UnitPrice)

	sale := inventory.Sale{
		Date:          date,
		ItemName:      req.ItemName,
		Category:      req.Category,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		Total:         quantity.Mul(unitPrice).Round(2),
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CreatedAt:     time.Now().UTC(),
	}

	err := s.store.Atomic(ctx, func(ctx context.Context) error {
		stockRepo := s.store.Stock()

		item, err := stockRepo.GetByItemName(ctx, sale.ItemName)
		if err != nil {
			return fmt.Errorf("failed to look up stock item: %w", err)
		}
		if item == nil {
			return inventory.ErrItemNotFound
		}
		if sale.Quantity.GreaterThan(item.CurrentQuantity) {
			return inventory.ErrInsufficientStock
		}

		item.CurrentQuantity = item.CurrentQuantity.Sub(sale.Quantity)
		item.UpdatedAt = time.Now().UTC()
		if err := stockRepo.Update(ctx, *item); err != nil {
			return fmt.Errorf("failed to update stock item: %w", err)
		}

		created, err := s.store.Sales().Create(ctx, sale)
		if err != nil {
			return err
		}
		sale = created
		return nil
	})
	if err != nil {
		return inventory.MovementResponse{}, err
	}

	return mapSaleToResponse(sale), nil
}

// ListStock implements inventory.InventoryService.
func (s *InventoryServiceImpl) ListStock(ctx context.Context) ([]inventory.StockItemResponse, error) {
	items, err := s.store.Stock().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock: %w", err)
	}

	responses := make([]inventory.StockItemResponse, 0, len(items))
	for _, item := range items {
		resp := inventory.StockItemResponse{
			ID:              item.ID,
			ItemName:        item.ItemName,
			Category:        item.Category,
			CurrentQuantity: item.CurrentQuantity.String(),
			UnitCostAverage: item.UnitCostAverage.String(),
		}
		if item.MinimumStock.IsPositive() {
			resp.MinimumStock = item.MinimumStock.String()
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// ListPurchases implements inventory.InventoryService.
func (s *InventoryServiceImpl) ListPurchases(ctx context.Context, filter inventory.MovementFilter) ([]inventory.MovementResponse, error) {
	purchases, err := s.store.Purchases().List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}

	responses := make([]inventory.MovementResponse, 0, len(purchases))
	for _, p := range purchases {
		responses = append(responses, mapPurchaseToResponse(p))
	}
	return responses, nil
}

// ListSales implements inventory.InventoryService.
func (s *InventoryServiceImpl) ListSales(ctx context.Context, filter inventory.MovementFilter) ([]inventory.MovementResponse, error) {
	sales, err := s.store.Sales().List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	responses := make([]inventory.MovementResponse, 0, len(sales))
	for _, sale := range sales {
		responses = append(responses, mapSaleToResponse(sale))
	}
	return responses, nil
}

// DeletePurchase implements inventory.InventoryService. Deleting a movement
// does not re-derive the stock row; the stock table stays as entered.
func (s *InventoryServiceImpl) DeletePurchase(ctx context.Context, id string) error {
	return s.store.Purchases().Delete(ctx, id)
}

// DeleteSale implements inventory.InventoryService.
func (s *InventoryServiceImpl) DeleteSale(ctx context.Context, id string) error {
	return s.store.Sales().Delete(ctx, id)
}

// DeleteStockItem implements inventory.InventoryService.
func (s *InventoryServiceImpl) DeleteStockItem(ctx context.Context, id string) error {
	return s.store.Stock().Delete(ctx, id)
}

// LookupCategory implements inventory.InventoryService.
func (s *InventoryServiceImpl) LookupCategory(ctx context.Context, itemName string) (string, error) {
	item, err := s.store.Stock().GetByItemName(ctx, itemName)
	if err != nil {
		return "", fmt.Errorf("failed to look up stock item: %w", err)
	}
	if item == nil {
		return "", inventory.ErrItemNotFound
	}
	return item.Category, nil
}

func mapPurchaseToResponse(p inventory.Purchase) inventory.MovementResponse {
	return inventory.MovementResponse{
		ID:        p.ID,
		Date:      p.Date.Format("2006-01-02"),
		ItemName:  p.ItemName,
		Category:  p.Category,
		Quantity:  p.Quantity.String(),
		UnitPrice: p.UnitPrice.String(),
		Total:     p.Total.String(),
	}
}

func mapSaleToResponse(sale inventory.Sale) inventory.MovementResponse {
	return inventory.MovementResponse{
		ID:            sale.ID,
		Date:          sale.Date.Format("2006-01-02"),
		ItemName:      sale.ItemName,
		Category:      sale.Category,
		Quantity:      sale.Quantity.String(),
		UnitPrice:     sale.UnitPrice.String(),
		Total:         sale.Total.String(),
		CustomerName:  sale.CustomerName,
		CustomerPhone: sale.CustomerPhone,
	}
}
