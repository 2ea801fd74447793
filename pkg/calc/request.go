package calc

// The request types carry raw form values, typically decoded from JSON where
// a field may arrive as a number, a string, or not at all. Compute coerces
// each field and runs the matching calculation.

// TipRequest holds raw tip calculator inputs.
type TipRequest struct {
	BillAmount  any `json:"billAmount"`
	TipPercent  any `json:"tipPercent"`
	PeopleCount any `json:"peopleCount"`
}

// Compute coerces the raw inputs and computes the tip split.
func (r TipRequest) Compute() TipResult {
	return ComputeTip(Coerce(r.BillAmount), Coerce(r.TipPercent), CoercePeople(r.PeopleCount))
}

// DiscountRequest holds raw discount calculator inputs.
type DiscountRequest struct {
	OriginalPrice         any `json:"originalPrice"`
	FirstDiscountPercent  any `json:"firstDiscountPercent"`
	SecondDiscountPercent any `json:"secondDiscountPercent,omitempty"`
}

// Compute coerces the raw inputs and applies the stacked discounts.
func (r DiscountRequest) Compute() DiscountResult {
	return ComputeDiscount(Coerce(r.OriginalPrice), Coerce(r.FirstDiscountPercent), Coerce(r.SecondDiscountPercent))
}

// PercentageRequest holds raw percentage calculator inputs.
type PercentageRequest struct {
	Mode Mode `json:"mode"`
	X    any  `json:"x"`
	Y    any  `json:"y"`
}

// Compute coerces the raw inputs and evaluates the relationship.
func (r PercentageRequest) Compute() PercentageResult {
	return ComputePercentage(r.Mode, Coerce(r.X), Coerce(r.Y))
}

// BMIRequest holds raw BMI calculator inputs.
type BMIRequest struct {
	Weight     any        `json:"weight"`
	Height     any        `json:"height"`
	UnitSystem UnitSystem `json:"unitSystem"`
}

// Compute coerces the raw inputs and computes the BMI.
func (r BMIRequest) Compute() BMIResult {
	return ComputeBMI(Coerce(r.Weight), Coerce(r.Height), r.UnitSystem)
}
