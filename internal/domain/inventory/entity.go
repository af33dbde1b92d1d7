package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem is the running position of one item: quantity on hand plus the
// weighted average unit cost across all purchases.
type StockItem struct {
	ID              string
	ItemName        string
	Category        string
	CurrentQuantity decimal.Decimal
	UnitCostAverage decimal.Decimal
	MinimumStock    decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Purchase struct {
	ID        string
	Date      time.Time
	ItemName  string
	Category  string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
	CreatedAt time.Time
}

type Sale struct {
	ID            string
	Date          time.Time
	ItemName      string
	Category      string
	Quantity      decimal.Decimal
	UnitPrice     decimal.Decimal
	Total         decimal.Decimal
	CustomerName  string
	CustomerPhone string
	CreatedAt     time.Time
}
