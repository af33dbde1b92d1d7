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

	"github.com/bizdash/bizops-backend-go/internal/domain/employee"
)

type employeeRepository struct {
	coll *mongo.Collection
}

type employeeDoc struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	EmployeeID  string               `bson:"employee_id"`
	Name        string               `bson:"name"`
	Email       string               `bson:"email,omitempty"`
	Phone       string               `bson:"phone,omitempty"`
	Department  string               `bson:"department,omitempty"`
	Position    string               `bson:"position,omitempty"`
	JoiningDate string               `bson:"joining_date,omitempty"`
	DailyWage   primitive.Decimal128 `bson:"daily_wage,omitempty"`
	CreatedAt   time.Time            `bson:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at"`
}

func (d employeeDoc) toEntity() employee.Employee {
	return employee.Employee{
		ID:          d.ID.Hex(),
		EmployeeID:  d.EmployeeID,
		Name:        d.Name,
		Email:       d.Email,
		Phone:       d.Phone,
		Department:  d.Department,
		Position:    d.Position,
		JoiningDate: parseDate(d.JoiningDate),
		DailyWage:   fromDecimal128(d.DailyWage),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func employeeToDoc(e employee.Employee) employeeDoc {
	doc := employeeDoc{
		EmployeeID: e.EmployeeID,
		Name:       e.Name,
		Email:      e.Email,
		Phone:      e.Phone,
		Department: e.Department,
		Position:   e.Position,
		DailyWage:  toDecimal128(e.DailyWage),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
	if !e.JoiningDate.IsZero() {
		doc.JoiningDate = formatDate(e.JoiningDate)
	}
	return doc
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	var doc employeeDoc
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *employeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	var doc employeeDoc
	err := r.coll.FindOne(ctx, bson.M{"employee_id": employeeID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by employee_id: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *employeeRepository) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return false, fmt.Errorf("failed to count employees: %w", err)
	}
	return count > 0, nil
}

func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	doc := employeeToDoc(newEmployee)

	result, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return employee.Employee{}, employee.ErrEmployeeIDExists
		}
		return employee.Employee{}, fmt.Errorf("failed to insert employee: %w", err)
	}

	newEmployee.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return newEmployee, nil
}

func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	oid, err := primitive.ObjectIDFromHex(emp.ID)
	if err != nil {
		return employee.ErrEmployeeNotFound
	}

	doc := employeeToDoc(emp)
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return employee.ErrEmployeeIDExists
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if result.MatchedCount == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return employee.ErrEmployeeNotFound
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if result.DeletedCount == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	query := bson.M{}
	if filter.Department != "" {
		query["department"] = filter.Department
	}
	if filter.Position != "" {
		query["position"] = filter.Position
	}
	if filter.Search != "" {
		query["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": filter.Search, "$options": "i"}},
			bson.M{"employee_id": bson.M{"$regex": filter.Search, "$options": "i"}},
		}
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "employee_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer cursor.Close(ctx)

	var employees []employee.Employee
	for cursor.Next(ctx) {
		var doc employeeDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode employee: %w", err)
		}
		employees = append(employees, doc.toEntity())
	}
	return employees, cursor.Err()
}
