package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bizdash/bizops-backend-go/internal/domain/attendance"
	"github.com/bizdash/bizops-backend-go/internal/domain/employee"
	"github.com/bizdash/bizops-backend-go/internal/domain/inventory"
	"github.com/bizdash/bizops-backend-go/internal/domain/user"
	"github.com/bizdash/bizops-backend-go/internal/store"
)

// connectTimeout bounds server selection so a dead database fails fast
// instead of hanging the startup.
const connectTimeout = 5 * time.Second

// Store is the document-database record store. One instance wraps one mongo
// database; every repository shares the same client.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewStore(ctx context.Context, uri string, dbName string) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(connectTimeout)

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	s := &Store{
		client: client,
		db:     client.Database(dbName),
	}

	if err := s.ensureCollections(ctx); err != nil {
		return nil, fmt.Errorf("failed to prepare collections: %w", err)
	}

	return s, nil
}

func (s *Store) Employees() employee.EmployeeRepository {
	return &employeeRepository{coll: s.db.Collection("employees")}
}

func (s *Store) Attendance() attendance.AttendanceRepository {
	return &attendanceRepository{coll: s.db.Collection("attendance")}
}

func (s *Store) Stock() inventory.StockRepository {
	return &stockRepository{coll: s.db.Collection("stock")}
}

func (s *Store) Purchases() inventory.PurchaseRepository {
	return &purchaseRepository{coll: s.db.Collection("purchases")}
}

func (s *Store) Sales() inventory.SaleRepository {
	return &saleRepository{coll: s.db.Collection("sales")}
}

func (s *Store) Users() user.UserRepository {
	return &userRepository{coll: s.db.Collection("users")}
}

// Atomic runs fn inside a session transaction. Standalone deployments do not
// support transactions; there fn runs without one.
func (s *Store) Atomic(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := s.client.StartSession()
	if err != nil {
		return fn(ctx)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	if err != nil && transactionsUnsupported(err) {
		return fn(ctx)
	}
	return err
}

func transactionsUnsupported(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		if cmdErr.Code == 20 { // IllegalOperation
			return true
		}
		return strings.Contains(cmdErr.Message, "Transaction numbers")
	}
	return false
}

func (s *Store) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := s.client.Ping(pingCtx, nil); err != nil {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	return nil
}

// Stats reads the database-level storage statistics.
func (s *Store) Stats(ctx context.Context) (store.Stats, error) {
	var result struct {
		DataSize    float64 `bson:"dataSize"`
		StorageSize float64 `bson:"storageSize"`
		Collections int64   `bson:"collections"`
		Objects     int64   `bson:"objects"`
	}

	err := s.db.RunCommand(ctx, bson.D{{Key: "dbStats", Value: 1}}).Decode(&result)
	if err != nil {
		return store.Stats{}, fmt.Errorf("failed to read db stats: %w", err)
	}

	return store.Stats{
		DataSizeBytes:    int64(result.DataSize),
		StorageSizeBytes: int64(result.StorageSize),
		Collections:      result.Collections,
		Objects:          result.Objects,
	}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// ensureCollections creates every collection with its schema validator and
// unique indexes. Existing collections are left as they are.
func (s *Store) ensureCollections(ctx context.Context) error {
	schemas := map[string]bson.M{
		"employees": {
			"bsonType": "object",
			"required": []string{"employee_id", "name"},
			"properties": bson.M{
				"employee_id": bson.M{"bsonType": "string"},
				"name":        bson.M{"bsonType": "string"},
			},
		},
		"attendance": {
			"bsonType": "object",
			"required": []string{"employee_id", "date", "status"},
			"properties": bson.M{
				"employee_id": bson.M{"bsonType": "string"},
				"date":        bson.M{"bsonType": "string"},
				"status":      bson.M{"enum": statusEnum()},
			},
		},
		"stock": {
			"bsonType": "object",
			"required": []string{"item_name", "category"},
			"properties": bson.M{
				"item_name": bson.M{"bsonType": "string"},
				"category":  bson.M{"bsonType": "string"},
			},
		},
		"purchases": {
			"bsonType": "object",
			"required": []string{"date", "item_name", "quantity", "unit_price"},
		},
		"sales": {
			"bsonType": "object",
			"required": []string{"date", "item_name", "quantity", "unit_price"},
		},
		"users": {
			"bsonType": "object",
			"required": []string{"email", "password_hash"},
		},
	}

	for name, schema := range schemas {
		opts := options.CreateCollection().SetValidator(bson.M{"$jsonSchema": schema})
		if err := s.db.CreateCollection(ctx, name, opts); err != nil {
			var cmdErr mongo.CommandError
			if errors.As(err, &cmdErr) && cmdErr.Code == 48 { // NamespaceExists
				continue
			}
			return fmt.Errorf("failed to create collection %s: %w", name, err)
		}
	}

	return s.ensureIndexes(ctx)
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	indexes := map[string]mongo.IndexModel{
		"employees": {
			Keys:    bson.D{{Key: "employee_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		"attendance": {
			Keys:    bson.D{{Key: "employee_id", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		"stock": {
			Keys:    bson.D{{Key: "item_name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		"users": {
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	for coll, model := range indexes {
		if _, err := s.db.Collection(coll).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", coll, err)
		}
	}
	return nil
}

func statusEnum() []string {
	values := make([]string, 0, len(attendance.AllStatuses))
	for _, s := range attendance.AllStatuses {
		values = append(values, string(s))
	}
	return values
}
