package calc

import (
	"github.com/iwvelando/quickcalc/pkg/mathutil"
)

// TipResult holds the outcome of a tip split. All amounts are rounded to
// two decimals.
type TipResult struct {
	TipAmount       float64 `json:"tipAmount" yaml:"tipAmount"`
	TotalAmount     float64 `json:"totalAmount" yaml:"totalAmount"`
	PerPersonAmount float64 `json:"perPersonAmount" yaml:"perPersonAmount"`
}

// ComputeTip computes the tip, the bill total and each person's share.
// The total is built from the rounded tip and the share from the rounded
// total, so the displayed figures always add up. The tip percentage is not
// capped; people below 1 is treated as 1. If the tip or the total overflows
// float64, the whole result is zero.
func ComputeTip(billAmount, tipPercent float64, peopleCount int) TipResult {
	bill := sanitize(billAmount)
	percent := sanitize(tipPercent)
	if peopleCount < 1 {
		peopleCount = 1
	}

	tipAmount := mathutil.Round(mathutil.ApplyPercentage(bill, percent))
	totalAmount := mathutil.Round(bill + tipAmount)
	if !mathutil.IsFinite(tipAmount) || !mathutil.IsFinite(totalAmount) {
		return TipResult{}
	}

	return TipResult{
		TipAmount:       tipAmount,
		TotalAmount:     totalAmount,
		PerPersonAmount: round2(totalAmount / float64(peopleCount)),
	}
}
