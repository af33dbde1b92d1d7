package excel

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizdash/bizops-backend-go/internal/domain/attendance"
	"github.com/bizdash/bizops-backend-go/internal/domain/employee"
	"github.com/bizdash/bizops-backend-go/internal/domain/inventory"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "business_data.xlsx"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func testEmployee(employeeID string) employee.Employee {
	return employee.Employee{
		EmployeeID:  employeeID,
		Name:        "Asha Verma",
		Email:       "asha@example.com",
		Phone:       "+919812345001",
		Department:  "Operations",
		Position:    "Manager",
		JoiningDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		DailyWage:   decimal.RequireFromString("900.00"),
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
		UpdatedAt:   time.Now().UTC().Truncate(time.Second),
	}
}

func TestEmployeeRepository_CreateAndGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	created, err := s.Employees().Create(ctx, testEmployee("EMP001"))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := s.Employees().GetByEmployeeID(ctx, "EMP001")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Asha Verma", got.Name)
	assert.Equal(t, "2024-01-15", got.JoiningDate.Format("2006-01-02"))
	assert.True(t, got.DailyWage.Equal(decimal.RequireFromString("900.00")))
}

func TestEmployeeRepository_CreateRejectsDuplicateEmployeeID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Employees().Create(ctx, testEmployee("EMP001"))
	require.NoError(t, err)

	_, err = s.Employees().Create(ctx, testEmployee("EMP001"))
	assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)
}

func TestEmployeeRepository_GetMissingReturnsNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Employees().GetByEmployeeID(ctx, "EMP404")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestStore_SurvivesReopen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "business_data.xlsx")

	s, err := NewStore(path)
	require.NoError(t, err)
	_, err = s.Employees().Create(ctx, testEmployee("EMP001"))
	require.NoError(t, err)
	require.NoError(t, s.Close(ctx))

	reopened, err := NewStore(path)
	require.NoError(t, err)
	defer reopened.Close(ctx)

	got, err := reopened.Employees().GetByEmployeeID(ctx, "EMP001")
	require.NoError(t, err)
	assert.Equal(t, "Asha Verma", got.Name)
}

func TestAttendanceRepository_DuplicateDateLookup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	date := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	_, err := s.Attendance().Create(ctx, attendance.Attendance{
		EmployeeID: "EMP001",
		Date:       date,
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	existing, err := s.Attendance().GetByEmployeeAndDate(ctx, "EMP001", date)
	require.NoError(t, err)
	require.NotNil(t, existing)
	assert.Equal(t, attendance.StatusPresent, existing.Status)

	missing, err := s.Attendance().GetByEmployeeAndDate(ctx, "EMP001", date.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore_AtomicCommitsAllWrites(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	err := s.Atomic(ctx, func(ctx context.Context) error {
		if _, err := s.Stock().Create(ctx, inventory.StockItem{
			ItemName:        "Basmati Rice 5kg",
			Category:        "Grocery",
			CurrentQuantity: decimal.RequireFromString("10"),
			UnitCostAverage: decimal.RequireFromString("420.00"),
		}); err != nil {
			return err
		}
		_, err := s.Purchases().Create(ctx, inventory.Purchase{
			Date:      time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
			ItemName:  "Basmati Rice 5kg",
			Category:  "Grocery",
			Quantity:  decimal.RequireFromString("10"),
			UnitPrice: decimal.RequireFromString("420.00"),
			Total:     decimal.RequireFromString("4200.00"),
		})
		return err
	})
	require.NoError(t, err)

	item, err := s.Stock().GetByItemName(ctx, "Basmati Rice 5kg")
	require.NoError(t, err)
	require.NotNil(t, item)

	purchases, err := s.Purchases().List(ctx, inventory.MovementFilter{})
	require.NoError(t, err)
	assert.Len(t, purchases, 1)
}

func TestStore_AtomicRollsBackOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	boom := errors.New("boom")
	err := s.Atomic(ctx, func(ctx context.Context) error {
		if _, err := s.Stock().Create(ctx, inventory.StockItem{
			ItemName:        "Sunflower Oil 1L",
			Category:        "Grocery",
			CurrentQuantity: decimal.RequireFromString("5"),
			UnitCostAverage: decimal.RequireFromString("145.50"),
		}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	item, err := s.Stock().GetByItemName(ctx, "Sunflower Oil 1L")
	require.NoError(t, err)
	assert.Nil(t, item)
}
