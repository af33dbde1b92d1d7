package excel

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/bizdash/bizops-backend-go/internal/domain/employee"
)

type employeeRepository struct {
	store *Store
}

func employeeFromRow(row []string) employee.Employee {
	return employee.Employee{
		ID:          row[0],
		EmployeeID:  row[1],
		Name:        row[2],
		Email:       row[3],
		Phone:       row[4],
		Department:  row[5],
		Position:    row[6],
		JoiningDate: parseDate(row[7]),
		DailyWage:   parseDecimal(row[8]),
		CreatedAt:   parseTimestamp(row[9]),
		UpdatedAt:   parseTimestamp(row[10]),
	}
}

func employeeToRow(e employee.Employee) []interface{} {
	return []interface{}{
		e.ID,
		e.EmployeeID,
		e.Name,
		e.Email,
		e.Phone,
		e.Department,
		e.Position,
		formatDate(e.JoiningDate),
		e.DailyWage.String(),
		formatTimestamp(e.CreatedAt),
		formatTimestamp(e.UpdatedAt),
	}
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	var result employee.Employee
	err := r.store.read(ctx, func() error {
		rowNum, row, err := r.store.findRow(sheetEmployees, 0, id)
		if err != nil {
			return err
		}
		if rowNum == 0 {
			return employee.ErrEmployeeNotFound
		}
		result = employeeFromRow(row)
		return nil
	})
	return result, err
}

func (r *employeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	var result employee.Employee
	err := r.store.read(ctx, func() error {
		rowNum, row, err := r.store.findRow(sheetEmployees, 1, employeeID)
		if err != nil {
			return err
		}
		if rowNum == 0 {
			return employee.ErrEmployeeNotFound
		}
		result = employeeFromRow(row)
		return nil
	})
	return result, err
}

func (r *employeeRepository) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	var exists bool
	err := r.store.read(ctx, func() error {
		rowNum, _, err := r.store.findRow(sheetEmployees, 1, employeeID)
		if err != nil {
			return err
		}
		exists = rowNum > 0
		return nil
	})
	return exists, err
}

func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	err := r.store.write(ctx, func() error {
		rowNum, _, err := r.store.findRow(sheetEmployees, 1, newEmployee.EmployeeID)
		if err != nil {
			return err
		}
		if rowNum > 0 {
			return employee.ErrEmployeeIDExists
		}

		newEmployee.ID = uuid.NewString()
		return r.store.appendRow(sheetEmployees, employeeToRow(newEmployee))
	})
	if err != nil {
		return employee.Employee{}, err
	}
	return newEmployee, nil
}

func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	return r.store.write(ctx, func() error {
		rowNum, _, err := r.store.findRow(sheetEmployees, 0, emp.ID)
		if err != nil {
			return err
		}
		if rowNum == 0 {
			return employee.ErrEmployeeNotFound
		}

		// The new employee id must not collide with another row.
		dupRow, _, err := r.store.findRow(sheetEmployees, 1, emp.EmployeeID)
		if err != nil {
			return err
		}
		if dupRow != 0 && dupRow != rowNum {
			return employee.ErrEmployeeIDExists
		}

		return r.store.setRow(sheetEmployees, rowNum, employeeToRow(emp))
	})
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	return r.store.write(ctx, func() error {
		rowNum, _, err := r.store.findRow(sheetEmployees, 0, id)
		if err != nil {
			return err
		}
		if rowNum == 0 {
			return employee.ErrEmployeeNotFound
		}
		return r.store.removeRow(sheetEmployees, rowNum)
	})
}

func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	var employees []employee.Employee
	err := r.store.read(ctx, func() error {
		rows, err := r.store.rows(sheetEmployees)
		if err != nil {
			return err
		}
		for _, row := range rows {
			emp := employeeFromRow(row)
			if filter.Department != "" && emp.Department != filter.Department {
				continue
			}
			if filter.Position != "" && emp.Position != filter.Position {
				continue
			}
			if filter.Search != "" && !matchesSearch(emp, filter.Search) {
				continue
			}
			employees = append(employees, emp)
		}
		return nil
	})
	return employees, err
}

func matchesSearch(emp employee.Employee, search string) bool {
	search = strings.ToLower(search)
	return strings.Contains(strings.ToLower(emp.Name), search) ||
		strings.Contains(strings.ToLower(emp.EmployeeID), search)
}
