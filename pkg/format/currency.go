// Package format renders calculator values for people to read.
package format

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Percent renders a percentage with two decimals, e.g. "75.00%".
func Percent(value float64) string {
	return printer.Sprintf("%.2f%%", value)
}

// Weight renders a weight with one decimal and its unit, e.g. "56.7 kg".
func Weight(value float64, unit string) string {
	return printer.Sprintf("%.1f %s", value, unit)
}

// Decimal renders a plain number with the given number of decimals and
// locale grouping.
func Decimal(value float64, places int) string {
	return printer.Sprintf(fmt.Sprintf("%%.%df", places), value)
}

func formatPositiveCurrency(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
