package calc

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/quickcalc/pkg/constants"
)

// UnitSystem selects the units for BMI weight and height inputs.
type UnitSystem string

const (
	// Metric takes kilograms and centimeters.
	Metric UnitSystem = "metric"
	// Imperial takes pounds and inches.
	Imperial UnitSystem = "imperial"
)

// ParseUnitSystem resolves a unit system name, ignoring case and surrounding space.
func ParseUnitSystem(s string) (UnitSystem, error) {
	switch u := UnitSystem(strings.ToLower(strings.TrimSpace(s))); u {
	case Metric, Imperial:
		return u, nil
	}
	return "", fmt.Errorf("unknown unit system %q, expected %s or %s", s, Metric, Imperial)
}

// WeightUnit is the weight unit used for ideal weight output.
func (u UnitSystem) WeightUnit() string {
	if u == Imperial {
		return "lb"
	}
	return "kg"
}

// Classification is a BMI category.
type Classification string

const (
	Underweight Classification = "Underweight"
	Normal      Classification = "Normal"
	Overweight  Classification = "Overweight"
	Obese       Classification = "Obese"
)

// WeightRange is an inclusive weight range in Unit.
type WeightRange struct {
	Min  float64 `json:"min" yaml:"min"`
	Max  float64 `json:"max" yaml:"max"`
	Unit string  `json:"unit" yaml:"unit"`
}

// BMIResult holds a BMI, its category, and the healthy weight range for the
// supplied height.
type BMIResult struct {
	BMI              float64        `json:"bmi" yaml:"bmi"`
	Classification   Classification `json:"classification" yaml:"classification"`
	IdealWeightRange WeightRange    `json:"idealWeightRange" yaml:"idealWeightRange"`
}

// Classify maps a BMI onto its category. Lower bounds are inclusive.
func Classify(bmi float64) Classification {
	switch {
	case bmi < constants.BMIUnderweightBelow:
		return Underweight
	case bmi < constants.BMINormalBelow:
		return Normal
	case bmi < constants.BMIOverweightBelow:
		return Overweight
	default:
		return Obese
	}
}

// ComputeBMI computes the BMI for weight and height given in units.
// Anything other than Imperial is read as metric (kg, cm). BMI and the ideal
// range are rounded to one decimal; the range is reported in the caller's
// weight unit.
func ComputeBMI(weight, height float64, units UnitSystem) BMIResult {
	weightKg := sanitize(weight)
	heightCm := sanitize(height)
	if units == Imperial {
		weightKg *= constants.KilogramsPerPound
		heightCm *= constants.CentimetersPerInch
	} else {
		units = Metric
	}

	heightM := heightCm / constants.CentimetersPerMeter
	heightSq := math.Pow(heightM, 2)

	var bmi float64
	if heightM > 0 {
		bmi = round1(weightKg / heightSq)
	}

	minWeight := constants.IdealBMIMin * heightSq
	maxWeight := constants.IdealBMIMax * heightSq
	if units == Imperial {
		minWeight *= constants.PoundsPerKilogram
		maxWeight *= constants.PoundsPerKilogram
	}

	return BMIResult{
		BMI:            bmi,
		Classification: Classify(bmi),
		IdealWeightRange: WeightRange{
			Min:  round1(minWeight),
			Max:  round1(maxWeight),
			Unit: units.WeightUnit(),
		},
	}
}
