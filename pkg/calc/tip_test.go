package calc

import (
	"math"
	"testing"

	"github.com/iwvelando/quickcalc/pkg/mathutil"
	"github.com/stretchr/testify/assert"
)

func TestComputeTip(t *testing.T) {
	tests := []struct {
		name     string
		bill     float64
		percent  float64
		people   int
		expected TipResult
	}{
		{"even split", 100, 15, 2, TipResult{TipAmount: 15, TotalAmount: 115, PerPersonAmount: 57.5}},
		{"uneven split rounds", 50, 18, 3, TipResult{TipAmount: 9, TotalAmount: 59, PerPersonAmount: 19.67}},
		{"no tip", 42.5, 0, 1, TipResult{TipAmount: 0, TotalAmount: 42.5, PerPersonAmount: 42.5}},
		{"tip percent not capped", 10, 1000, 1, TipResult{TipAmount: 100, TotalAmount: 110, PerPersonAmount: 110}},
		{"zero people clamps to one", 100, 10, 0, TipResult{TipAmount: 10, TotalAmount: 110, PerPersonAmount: 110}},
		{"negative people clamps to one", 100, 10, -3, TipResult{TipAmount: 10, TotalAmount: 110, PerPersonAmount: 110}},
		{"negative bill degrades to zero", -100, 15, 2, TipResult{}},
		{"NaN percent degrades to zero", 100, math.NaN(), 4, TipResult{TipAmount: 0, TotalAmount: 100, PerPersonAmount: 25}},
		{"tip overflow zeroes everything", 1e308, 1000, 1, TipResult{}},
		{"total overflow zeroes everything", 1.5e308, 50, 2, TipResult{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputeTip(tt.bill, tt.percent, tt.people))
		})
	}
}

func TestComputeTipTotalIdentity(t *testing.T) {
	for _, bill := range []float64{0, 0.01, 9.99, 33.33, 100, 1234.56} {
		for _, percent := range []float64{0, 5, 12.5, 15, 18, 20, 25} {
			for people := 1; people <= 7; people++ {
				res := ComputeTip(bill, percent, people)
				assert.Equal(t, mathutil.Round(bill+res.TipAmount), res.TotalAmount, "bill=%v tip=%v", bill, percent)
				assert.Equal(t, mathutil.Round(res.TotalAmount/float64(people)), res.PerPersonAmount,
					"bill=%v tip=%v people=%d", bill, percent, people)
			}
		}
	}
}

func TestComputeTipFromBlankInputs(t *testing.T) {
	res := TipRequest{BillAmount: "", TipPercent: "", PeopleCount: ""}.Compute()
	assert.Equal(t, TipResult{}, res)
}
