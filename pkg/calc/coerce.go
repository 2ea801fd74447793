package calc

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/iwvelando/quickcalc/pkg/constants"
	"github.com/iwvelando/quickcalc/pkg/mathutil"
	"github.com/spf13/cast"
)

// leadingNumber matches the numeric prefix of a partially typed value such as
// "12.", "3.5kg" or "1e3x".
var leadingNumber = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// Coerce converts a raw input value into a finite, non-negative float64.
// Anything that cannot be read as a number, as well as negative, NaN and
// infinite values, yields 0. Coerce never panics.
func Coerce(raw any) float64 {
	var f float64
	switch v := raw.(type) {
	case nil, bool:
		return 0
	case string:
		f = parseLeadingFloat(v)
	case json.Number:
		f = parseLeadingFloat(v.String())
	default:
		parsed, err := cast.ToFloat64E(raw)
		if err != nil {
			return 0
		}
		f = parsed
	}
	return sanitize(f)
}

// CoercePeople converts a raw head count into an integer of at least 1.
// Fractional values are truncated toward zero before clamping.
func CoercePeople(raw any) int {
	return clampPeople(Coerce(raw))
}

func clampPeople(f float64) int {
	n := math.Trunc(f)
	if n < 1 {
		return 1
	}
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}

// sanitize maps NaN, infinities, negative values and -0 to 0.
func sanitize(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0
	}
	return f
}

// parseLeadingFloat reads the longest decimal number at the start of s.
func parseLeadingFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	// Only the decimal prefix counts, so Go literal forms such as "1_000" or
	// "0x10" read as 1 and 0.
	prefix := leadingNumber.FindString(s)
	if prefix == "" {
		return 0
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0
	}
	return f
}

// round2 and round1 round a computed value for output, mapping overflow to 0
// so extreme inputs never surface as an infinity.
func round2(f float64) float64 { return finiteOrZero(mathutil.Round(f)) }

func round1(f float64) float64 {
	return finiteOrZero(mathutil.RoundTo(f, constants.BMIPlaces))
}

func finiteOrZero(f float64) float64 {
	if !mathutil.IsFinite(f) {
		return 0
	}
	return f
}
