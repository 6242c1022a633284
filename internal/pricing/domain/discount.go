package domain

import (
	catalog "github.com/dwikikusuma/shopcart/internal/catalog/domain"
)

// Discount turns a running cart total into a new total. Implementations must not
// modify items. The set of discounts is closed: only this package provides them.
type Discount interface {
	Apply(total float64, items []catalog.Item) float64
	discount()
}

// PercentageDiscount takes Percentage percent off the total. Values outside
// [0, 100] are not clamped.
type PercentageDiscount struct {
	Percentage float64
}

func NewPercentageDiscount(percentage float64) PercentageDiscount {
	return PercentageDiscount{Percentage: percentage}
}

func (d PercentageDiscount) Apply(total float64, _ []catalog.Item) float64 {
	return total * (1 - d.Percentage/100)
}

func (PercentageDiscount) discount() {}

// FixedAmountDiscount subtracts Amount from the total, flooring at zero.
type FixedAmountDiscount struct {
	Amount float64
}

func NewFixedAmountDiscount(amount float64) FixedAmountDiscount {
	return FixedAmountDiscount{Amount: amount}
}

func (d FixedAmountDiscount) Apply(total float64, _ []catalog.Item) float64 {
	return max(0, total-d.Amount)
}

func (FixedAmountDiscount) discount() {}

// Apply folds discounts over total from left to right.
func Apply(total float64, items []catalog.Item, discounts ...Discount) float64 {
	for _, d := range discounts {
		total = d.Apply(total, items)
	}
	return total
}
