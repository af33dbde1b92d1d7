package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCostCalculator_WeightedAverage(t *testing.T) {
	t.Parallel()
	calc := NewCostCalculator()

	tests := []struct {
		name          string
		currentQty    string
		currentAvg    string
		purchaseQty   string
		purchasePrice string
		want          string
	}{
		{
			name:          "blends existing stock with a dearer purchase",
			currentQty:    "10",
			currentAvg:    "5.00",
			purchaseQty:   "5",
			purchasePrice: "8.00",
			want:          "6",
		},
		{
			name:          "first purchase sets the average to the price",
			currentQty:    "0",
			currentAvg:    "0",
			purchaseQty:   "20",
			purchasePrice: "3.75",
			want:          "3.75",
		},
		{
			name:          "same price leaves the average unchanged",
			currentQty:    "12",
			currentAvg:    "4.50",
			purchaseQty:   "8",
			purchasePrice: "4.50",
			want:          "4.5",
		},
		{
			name:          "result is rounded to two decimal places",
			currentQty:    "3",
			currentAvg:    "10.00",
			purchaseQty:   "3",
			purchasePrice: "10.01",
			want:          "10.01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.WeightedAverage(
				decimal.RequireFromString(tt.currentQty),
				decimal.RequireFromString(tt.currentAvg),
				decimal.RequireFromString(tt.purchaseQty),
				decimal.RequireFromString(tt.purchasePrice),
			)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestCostCalculator_WeightedAverage_ZeroTotalKeepsAverage(t *testing.T) {
	t.Parallel()
	calc := NewCostCalculator()

	got := calc.WeightedAverage(
		decimal.Zero,
		decimal.RequireFromString("7.25"),
		decimal.Zero,
		decimal.RequireFromString("9.99"),
	)

	assert.Equal(t, "7.25", got.String())
}
