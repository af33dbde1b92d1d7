package inventory

import "github.com/shopspring/decimal"

// CostCalculator folds purchases into a weighted average unit cost.
type CostCalculator struct{}

func NewCostCalculator() *CostCalculator {
	return &CostCalculator{}
}

// WeightedAverage merges a purchase into the current stock position:
//
//	(currentQty*currentAvg + purchaseQty*purchasePrice) / (currentQty + purchaseQty)
//
// rounded to 2 decimal places. Sales never touch the average; only purchases
// move it.
func (c *CostCalculator) WeightedAverage(currentQty, currentAvg, purchaseQty, purchasePrice decimal.Decimal) decimal.Decimal {
	totalQty := currentQty.Add(purchaseQty)
	if totalQty.IsZero() {
		return currentAvg
	}

	totalValue := currentQty.Mul(currentAvg).Add(purchaseQty.Mul(purchasePrice))
	return totalValue.Div(totalQty).Round(2)
}
