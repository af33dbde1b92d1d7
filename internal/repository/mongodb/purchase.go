package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bizdash/bizops-backend-go/internal/domain/inventory"
)

type purchaseRepository struct {
	coll *mongo.Collection
}

type purchaseDoc struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	Date      string               `bson:"date"`
	ItemName  string               `bson:"item_name"`
	Category  string               `bson:"category"`
	Quantity  primitive.Decimal128 `bson:"quantity"`
	UnitPrice primitive.Decimal128 `bson:"unit_price"`
	Total     primitive.Decimal128 `bson:"total"`
	CreatedAt time.Time            `bson:"created_at"`
}

func (d purchaseDoc) toEntity() inventory.Purchase {
	return inventory.Purchase{
		ID:        d.ID.Hex(),
		Date:      parseDate(d.Date),
		ItemName:  d.ItemName,
		Category:  d.Category,
		Quantity:  fromDecimal128(d.Quantity),
		UnitPrice: fromDecimal128(d.UnitPrice),
		Total:     fromDecimal128(d.Total),
		CreatedAt: d.CreatedAt,
	}
}

func (r *purchaseRepository) Create(ctx context.Context, purchase inventory.Purchase) (inventory.Purchase, error) {
	doc := purchaseDoc{
		Date:      formatDate(purchase.Date),
		ItemName:  purchase.ItemName,
		Category:  purchase.Category,
		Quantity:  toDecimal128(purchase.Quantity),
		UnitPrice: toDecimal128(purchase.UnitPrice),
		Total:     toDecimal128(purchase.Total),
		CreatedAt: purchase.CreatedAt,
	}

	result, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return inventory.Purchase{}, fmt.Errorf("failed to insert purchase: %w", err)
	}

	purchase.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return purchase, nil
}

func (r *purchaseRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return inventory.ErrPurchaseNotFound
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete purchase: %w", err)
	}
	if result.DeletedCount == 0 {
		return inventory.ErrPurchaseNotFound
	}
	return nil
}

func (r *purchaseRepository) List(ctx context.Context, filter inventory.MovementFilter) ([]inventory.Purchase, error) {
	query := bson.M{}
	if filter.ItemName != "" {
		query["item_name"] = filter.ItemName
	}
	if dateRange := dateRangeQuery(filter.From, filter.To); dateRange != nil {
		query["date"] = dateRange
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	defer cursor.Close(ctx)

	var purchases []inventory.Purchase
	for cursor.Next(ctx) {
		var doc purchaseDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode purchase: %w", err)
		}
		purchases = append(purchases, doc.toEntity())
	}
	return purchases, cursor.Err()
}
