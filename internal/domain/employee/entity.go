package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID          string
	EmployeeID  string
	Name        string
	Email       string
	Phone       string
	Department  string
	Position    string
	JoiningDate time.Time
	DailyWage   decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
