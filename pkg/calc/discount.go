package calc

import (
	"github.com/iwvelando/quickcalc/pkg/mathutil"
)

// DiscountResult holds the outcome of applying up to two stacked discounts.
type DiscountResult struct {
	FirstDiscountAmount  float64 `json:"firstDiscountAmount" yaml:"firstDiscountAmount"`
	SecondDiscountAmount float64 `json:"secondDiscountAmount" yaml:"secondDiscountAmount"`
	FinalPrice           float64 `json:"finalPrice" yaml:"finalPrice"`
	TotalSavings         float64 `json:"totalSavings" yaml:"totalSavings"`
	TotalDiscountPercent float64 `json:"totalDiscountPercent" yaml:"totalDiscountPercent"`
}

// ComputeDiscount applies firstPercent to originalPrice and then
// secondPercent to the price remaining after the first discount. Two 50%
// discounts therefore take 75% off, not 100%.
//
// Percentages above 100 are accepted as given, so FinalPrice may go negative.
// FinalPrice is non-increasing in each percentage only while both are within
// 0..100; with a second discount above 100, raising the first raises it.
func ComputeDiscount(originalPrice, firstPercent, secondPercent float64) DiscountResult {
	price := sanitize(originalPrice)
	first := sanitize(firstPercent)
	second := sanitize(secondPercent)

	firstAmount := mathutil.ApplyPercentage(price, first)
	afterFirst := price - firstAmount

	var secondAmount float64
	if second > 0 {
		secondAmount = mathutil.ApplyPercentage(afterFirst, second)
	}

	final := afterFirst - secondAmount
	savings := price - final

	var totalPercent float64
	if price > 0 {
		totalPercent = mathutil.CalculatePercentage(savings, price)
	}

	return DiscountResult{
		FirstDiscountAmount:  round2(firstAmount),
		SecondDiscountAmount: round2(secondAmount),
		FinalPrice:           round2(final),
		TotalSavings:         round2(savings),
		TotalDiscountPercent: round2(totalPercent),
	}
}
