package employee

import (
	"github.com/bizdash/bizops-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeID  string `json:"employee_id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Department  string `json:"department,omitempty"`
	Position    string `json:"position,omitempty"`
	JoiningDate string `json:"joining_date,omitempty"`
	DailyWage   string `json:"daily_wage,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsEmpty(r.Email) && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if !validator.IsEmpty(r.JoiningDate) {
		if _, ok := validator.IsValidDate(r.JoiningDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "joining_date",
				Message: "joining_date must be in YYYY-MM-DD format",
			})
		}
	}

	if !validator.IsEmpty(r.DailyWage) && !validator.IsValidDecimal(r.DailyWage) {
		errs = append(errs, validator.ValidationError{
			Field:   "daily_wage",
			Message: "daily_wage must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID          string `json:"-"`
	EmployeeID  string `json:"employee_id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Department  string `json:"department,omitempty"`
	Position    string `json:"position,omitempty"`
	JoiningDate string `json:"joining_date,omitempty"`
	DailyWage   string `json:"daily_wage,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	create := CreateEmployeeRequest{
		EmployeeID:  r.EmployeeID,
		Name:        r.Name,
		Email:       r.Email,
		JoiningDate: r.JoiningDate,
		DailyWage:   r.DailyWage,
	}
	return create.Validate()
}

type EmployeeFilter struct {
	Department string
	Position   string
	Search     string
}

type EmployeeResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Department  string `json:"department,omitempty"`
	Position    string `json:"position,omitempty"`
	JoiningDate string `json:"joining_date,omitempty"`
	DailyWage   string `json:"daily_wage,omitempty"`
}
