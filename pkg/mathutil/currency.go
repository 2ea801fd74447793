// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/quickcalc/pkg/constants"
	"github.com/shopspring/decimal"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Midpoints round away from zero.
func Round(val float64) float64 {
	return RoundTo(val, constants.CurrencyPlaces)
}

// RoundTo rounds a value to the given number of fractional digits, rounding
// midpoints away from zero. The value is taken at its shortest decimal
// representation, so 1.005 rounds to 1.01 rather than 1.00.
// NaN and infinities are returned unchanged.
func RoundTo(val float64, places int32) float64 {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return val
	}
	rounded := decimal.NewFromFloat(val).Round(places).InexactFloat64()
	if rounded == 0 {
		// Avoid -0 leaking into rendered output.
		return 0
	}
	return rounded
}

// IsFinite reports whether val is neither NaN nor an infinity.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// CalculatePercentage calculates what percentage value is of total.
// A zero total yields 0.
func CalculatePercentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return (value / total) * constants.PercentageMultiplier
}

// ApplyPercentage applies a percentage to a value
func ApplyPercentage(value, percentage float64) float64 {
	return value * (percentage / constants.PercentageMultiplier)
}
