package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bizdash/bizops-backend-go/internal/domain/inventory"
)

type stockRepository struct {
	coll *mongo.Collection
}

type stockDoc struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty"`
	ItemName        string               `bson:"item_name"`
	Category        string               `bson:"category"`
	CurrentQuantity primitive.Decimal128 `bson:"current_quantity"`
	UnitCostAverage primitive.Decimal128 `bson:"unit_cost_average"`
	MinimumStock    primitive.Decimal128 `bson:"minimum_stock,omitempty"`
	CreatedAt       time.Time            `bson:"created_at"`
	UpdatedAt       time.Time            `bson:"updated_at"`
}

func (d stockDoc) toEntity() inventory.StockItem {
	return inventory.StockItem{
		ID:              d.ID.Hex(),
		ItemName:        d.ItemName,
		Category:        d.Category,
		CurrentQuantity: fromDecimal128(d.CurrentQuantity),
		UnitCostAverage: fromDecimal128(d.UnitCostAverage),
		MinimumStock:    fromDecimal128(d.MinimumStock),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func stockToDoc(item inventory.StockItem) stockDoc {
	return stockDoc{
		ItemName:        item.ItemName,
		Category:        item.Category,
		CurrentQuantity: toDecimal128(item.CurrentQuantity),
		UnitCostAverage: toDecimal128(item.UnitCostAverage),
		MinimumStock:    toDecimal128(item.MinimumStock),
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

func (r *stockRepository) GetByItemName(ctx context.Context, itemName string) (*inventory.StockItem, error) {
	var doc stockDoc
	err := r.coll.FindOne(ctx, bson.M{"item_name": itemName}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get stock item: %w", err)
	}

	item := doc.toEntity()
	return &item, nil
}

func (r *stockRepository) Create(ctx context.Context, item inventory.StockItem) (inventory.StockItem, error) {
	result, err := r.coll.InsertOne(ctx, stockToDoc(item))
	if err != nil {
		return inventory.StockItem{}, fmt.Errorf("failed to insert stock item: %w", err)
	}

	item.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return item, nil
}

func (r *stockRepository) Update(ctx context.Context, item inventory.StockItem) error {
	oid, err := primitive.ObjectIDFromHex(item.ID)
	if err != nil {
		return inventory.ErrItemNotFound
	}

	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, stockToDoc(item))
	if err != nil {
		return fmt.Errorf("failed to update stock item: %w", err)
	}
	if result.MatchedCount == 0 {
		return inventory.ErrItemNotFound
	}
	return nil
}

func (r *stockRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return inventory.ErrItemNotFound
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete stock item: %w", err)
	}
	if result.DeletedCount == 0 {
		return inventory.ErrItemNotFound
	}
	return nil
}

func (r *stockRepository) List(ctx context.Context) ([]inventory.StockItem, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "item_name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list stock: %w", err)
	}
	defer cursor.Close(ctx)

	var items []inventory.StockItem
	for cursor.Next(ctx) {
		var doc stockDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode stock item: %w", err)
		}
		items = append(items, doc.toEntity())
	}
	return items, cursor.Err()
}
