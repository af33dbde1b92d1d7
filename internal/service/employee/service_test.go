package employee

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizdash/bizops-backend-go/internal/domain/employee"
	"github.com/bizdash/bizops-backend-go/internal/pkg/validator"
	"github.com/bizdash/bizops-backend-go/internal/repository/excel"
)

func newTestService(t *testing.T) employee.EmployeeService {
	t.Helper()
	s, err := excel.NewStore(filepath.Join(t.TempDir(), "business_data.xlsx"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return NewEmployeeService(s.Employees())
}

func createRequest(employeeID string) employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		EmployeeID:  employeeID,
		Name:        "Asha Verma",
		Email:       "asha@example.com",
		Department:  "Operations",
		Position:    "Manager",
		JoiningDate: "2024-01-15",
		DailyWage:   "900.00",
	}
}

func TestEmployeeService_CreateEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	resp, err := svc.CreateEmployee(ctx, createRequest("EMP001"))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "EMP001", resp.EmployeeID)
	assert.Equal(t, "Asha Verma", resp.Name)
	assert.Equal(t, "2024-01-15", resp.JoiningDate)
}

func TestEmployeeService_CreateEmployee_DuplicateEmployeeID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.CreateEmployee(ctx, createRequest("EMP001"))
	require.NoError(t, err)

	_, err = svc.CreateEmployee(ctx, createRequest("EMP001"))
	assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)
}

func TestEmployeeService_CreateEmployee_RejectsInvalidRequest(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	req := createRequest("EMP001")
	req.Name = ""
	req.DailyWage = "not-a-number"

	_, err := svc.CreateEmployee(ctx, req)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	details := verrs.ToMap()
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "daily_wage")
}

func TestEmployeeService_UpdateEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.CreateEmployee(ctx, createRequest("EMP001"))
	require.NoError(t, err)

	updated, err := svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{
		ID:          created.ID,
		EmployeeID:  "EMP001",
		Name:        "Asha V",
		Department:  "Sales",
		JoiningDate: "2024-01-15",
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha V", updated.Name)
	assert.Equal(t, "Sales", updated.Department)
}

func TestEmployeeService_DeleteEmployee_ThenGone(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.CreateEmployee(ctx, createRequest("EMP001"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEmployee(ctx, created.ID))

	_, err = svc.GetEmployee(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_ListEmployees_Filter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.CreateEmployee(ctx, createRequest("EMP001"))
	require.NoError(t, err)

	other := createRequest("EMP002")
	other.Name = "Rohan Mehta"
	other.Email = "rohan@example.com"
	other.Department = "Sales"
	_, err = svc.CreateEmployee(ctx, other)
	require.NoError(t, err)

	all, err := svc.ListEmployees(ctx, employee.EmployeeFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	sales, err := svc.ListEmployees(ctx, employee.EmployeeFilter{Department: "Sales"})
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "EMP002", sales[0].EmployeeID)
}
