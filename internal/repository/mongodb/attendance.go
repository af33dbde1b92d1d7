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

	"github.com/bizdash/bizops-backend-go/internal/domain/attendance"
)

type attendanceRepository struct {
	coll *mongo.Collection
}

type attendanceDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeID    string             `bson:"employee_id"`
	Date          string             `bson:"date"`
	Status        string             `bson:"status"`
	OvertimeHours float64            `bson:"overtime_hours,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func (d attendanceDoc) toEntity() attendance.Attendance {
	return attendance.Attendance{
		ID:            d.ID.Hex(),
		EmployeeID:    d.EmployeeID,
		Date:          parseDate(d.Date),
		Status:        attendance.Status(d.Status),
		OvertimeHours: d.OvertimeHours,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func attendanceToDoc(a attendance.Attendance) attendanceDoc {
	return attendanceDoc{
		EmployeeID:    a.EmployeeID,
		Date:          formatDate(a.Date),
		Status:        string(a.Status),
		OvertimeHours: a.OvertimeHours,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func (r *attendanceRepository) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	result, err := r.coll.InsertOne(ctx, attendanceToDoc(record))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return attendance.Attendance{}, attendance.ErrDuplicateAttendance
		}
		return attendance.Attendance{}, fmt.Errorf("failed to insert attendance: %w", err)
	}

	record.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return record, nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}

	var doc attendanceDoc
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	var doc attendanceDoc
	err := r.coll.FindOne(ctx, bson.M{
		"employee_id": employeeID,
		"date":        formatDate(date),
	}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	record := doc.toEntity()
	return &record, nil
}

func (r *attendanceRepository) Update(ctx context.Context, record attendance.Attendance) error {
	oid, err := primitive.ObjectIDFromHex(record.ID)
	if err != nil {
		return attendance.ErrAttendanceNotFound
	}

	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, attendanceToDoc(record))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return attendance.ErrDuplicateAttendance
		}
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if result.MatchedCount == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return attendance.ErrAttendanceNotFound
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if result.DeletedCount == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	query := bson.M{}
	if filter.EmployeeID != "" {
		query["employee_id"] = filter.EmployeeID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if dateRange := dateRangeQuery(filter.From, filter.To); dateRange != nil {
		query["date"] = dateRange
	}

	return r.find(ctx, query)
}

func (r *attendanceRepository) ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	return r.find(ctx, bson.M{
		"employee_id": employeeID,
		"date": bson.M{
			"$gte": formatDate(from),
			"$lte": formatDate(to),
		},
	})
}

func (r *attendanceRepository) find(ctx context.Context, query bson.M) ([]attendance.Attendance, error) {
	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer cursor.Close(ctx)

	var records []attendance.Attendance
	for cursor.Next(ctx) {
		var doc attendanceDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode attendance: %w", err)
		}
		records = append(records, doc.toEntity())
	}
	return records, cursor.Err()
}

// dateRangeQuery builds a range condition over the stored YYYY-MM-DD strings.
func dateRangeQuery(from, to *time.Time) bson.M {
	if from == nil && to == nil {
		return nil
	}
	rangeQuery := bson.M{}
	if from != nil {
		rangeQuery["$gte"] = formatDate(*from)
	}
	if to != nil {
		rangeQuery["$lte"] = formatDate(*to)
	}
	return rangeQuery
}
