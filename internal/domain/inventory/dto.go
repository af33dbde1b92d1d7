package inventory

import (
	"github.com/bizdash/bizops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RecordPurchaseRequest struct {
	Date      string `json:"date"`
	ItemName  string `json:"item_name"`
	Category  string `json:"category"`
	Quantity  string `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

func (r *RecordPurchaseRequest) Validate() error {
	errs := validateMovement(r.Date, r.ItemName, r.Category, r.Quantity, r.UnitPrice)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordSaleRequest struct {
	Date          string `json:"date"`
	ItemName      string `json:"item_name"`
	Category      string `json:"category"`
	Quantity      string `json:"quantity"`
	UnitPrice     string `json:"unit_price"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`
}

func (r *RecordSaleRequest) Validate() error {
	errs := validateMovement(r.Date, r.ItemName, r.Category, r.Quantity, r.UnitPrice)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// validateMovement covers the fields purchases and sales share. Quantity must
// be strictly positive, unit price can be zero but not negative.
func validateMovement(date, itemName, category, quantity, unitPrice string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(itemName) {
		errs = append(errs, validator.ValidationError{
			Field:   "item_name",
			Message: "item_name is required",
		})
	}

	if validator.IsEmpty(category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	}

	if qty, err := decimal.NewFromString(quantity); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "quantity",
			Message: "quantity must be a number",
		})
	} else if qty.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{
			Field:   "quantity",
			Message: "quantity must be greater than zero",
		})
	}

	if price, err := decimal.NewFromString(unitPrice); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "unit_price",
			Message: "unit_price must be a number",
		})
	} else if price.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "unit_price",
			Message: "unit_price must not be negative",
		})
	}

	return errs
}

type StockItemResponse struct {
	ID              string `json:"id"`
	ItemName        string `json:"item_name"`
	Category        string `json:"category"`
	CurrentQuantity string `json:"current_quantity"`
	UnitCostAverage string `json:"unit_cost_average"`
	MinimumStock    string `json:"minimum_stock,omitempty"`
}

type MovementResponse struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	ItemName      string `json:"item_name"`
	Category      string `json:"category"`
	Quantity      string `json:"quantity"`
	UnitPrice     string `json:"unit_price"`
	Total         string `json:"total"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`
}
