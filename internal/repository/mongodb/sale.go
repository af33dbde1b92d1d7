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

type saleRepository struct {
	coll *mongo.Collection
}

type saleDoc struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`
	Date          string               `bson:"date"`
	ItemName      string               `bson:"item_name"`
	Category      string               `bson:"category"`
	Quantity      primitive.Decimal128 `bson:"quantity"`
	UnitPrice     primitive.Decimal128 `bson:"unit_price"`
	Total         primitive.Decimal128 `bson:"total"`
	CustomerName  string               `bson:"customer_name,omitempty"`
	CustomerPhone string               `bson:"customer_phone,omitempty"`
	CreatedAt     time.Time            `bson:"created_at"`
}

func (d saleDoc) toEntity() inventory.Sale {
	return inventory.Sale{
		ID:            d.ID.Hex(),
		Date:          parseDate(d.Date),
		ItemName:      d.ItemName,
		Category:      d.Category,
		Quantity:      fromDecimal128(d.Quantity),
		UnitPrice:     fromDecimal128(d.UnitPrice),
		Total:         fromDecimal128(d.Total),
		CustomerName:  d.CustomerName,
		CustomerPhone: d.CustomerPhone,
		CreatedAt:     d.CreatedAt,
	}
}

func (r *saleRepository) Create(ctx context.Context, sale inventory.Sale) (inventory.Sale, error) {
	doc := saleDoc{
		Date:          formatDate(sale.Date),
		ItemName:      sale.ItemName,
		Category:      sale.Category,
		Quantity:      toDecimal128(sale.Quantity),
		UnitPrice:     toDecimal128(sale.UnitPrice),
		Total:         toDecimal128(sale.Total),
		CustomerName:  sale.CustomerName,
		CustomerPhone: sale.CustomerPhone,
		CreatedAt:     sale.CreatedAt,
	}

	result, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return inventory.Sale{}, fmt.Errorf("failed to insert sale: %w", err)
	}

	sale.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return sale, nil
}

func (r *saleRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return inventory.ErrSaleNotFound
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete sale: %w", err)
	}
	if result.DeletedCount == 0 {
		return inventory.ErrSaleNotFound
	}
	return nil
}

func (r *saleRepository) List(ctx context.Context, filter inventory.MovementFilter) ([]inventory.Sale, error) {
	query := bson.M{}
	if filter.ItemName != "" {
		query["item_name"] = filter.ItemName
	}
	if dateRange := dateRangeQuery(filter.From, filter.To); dateRange != nil {
		query["date"] = dateRange
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer cursor.Close(ctx)

	var sales []inventory.Sale
	for cursor.Next(ctx) {
		var doc saleDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode sale: %w", err)
		}
		sales = append(sales, doc.toEntity())
	}
	return sales, cursor.Err()
}
