package calc

import (
	"fmt"
	"strings"

	"github.com/iwvelando/quickcalc/pkg/mathutil"
)

// Mode selects one of the percentage relationships.
type Mode string

const (
	// ModeWhatIs answers "what is X% of Y".
	ModeWhatIs Mode = "what_is"
	// ModeIsWhat answers "X is what % of Y".
	ModeIsWhat Mode = "is_what"
	// ModeIncrease is the percentage change from X up to Y.
	ModeIncrease Mode = "increase"
	// ModeDecrease is the percentage change from X down to Y.
	ModeDecrease Mode = "decrease"
)

// Modes lists every supported mode in display order.
var Modes = []Mode{ModeWhatIs, ModeIsWhat, ModeIncrease, ModeDecrease}

// ParseMode resolves a mode name, ignoring case and surrounding space.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if m.Valid() {
		return m, nil
	}
	return "", fmt.Errorf("unknown percentage mode %q, expected one of %v", s, Modes)
}

// Valid reports whether m is one of the supported modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeWhatIs, ModeIsWhat, ModeIncrease, ModeDecrease:
		return true
	}
	return false
}

// PercentageResult is the outcome of a percentage relationship.
//
// Result is 0 whenever the formula would divide by zero or the mode is not
// recognised. Defined is false in exactly those cases, so callers that must
// distinguish "undefined" from a genuine 0 can do so.
type PercentageResult struct {
	Mode    Mode    `json:"mode" yaml:"mode"`
	Result  float64 `json:"result" yaml:"result"`
	Defined bool    `json:"defined" yaml:"defined"`
}

// ComputePercentage evaluates the relationship selected by mode for x and y.
func ComputePercentage(mode Mode, x, y float64) PercentageResult {
	x = sanitize(x)
	y = sanitize(y)

	var (
		result  float64
		defined = true
	)
	switch mode {
	case ModeWhatIs:
		result = mathutil.ApplyPercentage(y, x)
	case ModeIsWhat:
		result, defined = ratio(x, y)
	case ModeIncrease:
		result, defined = ratio(y-x, x)
	case ModeDecrease:
		result, defined = ratio(x-y, x)
	default:
		defined = false
	}

	return PercentageResult{
		Mode:    mode,
		Result:  round2(result),
		Defined: defined,
	}
}

// ratio returns num as a percentage of den, or (0, false) when den is zero.
func ratio(num, den float64) (float64, bool) {
	if den == 0 {
		return 0, false
	}
	return mathutil.CalculatePercentage(num, den), true
}
