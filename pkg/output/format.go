// Package output provides utilities for formatting and displaying calculator results.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/quickcalc/pkg/calc"
	"github.com/iwvelando/quickcalc/pkg/constants"
	"github.com/iwvelando/quickcalc/pkg/format"
	"gopkg.in/yaml.v3"
)

// field is one labelled value of a result. Pretty is shown to people, Raw is
// machine-readable.
type field struct {
	Name   string
	Pretty string
	Raw    string
}

// Render writes result to w in the requested output format.
func Render(w io.Writer, outputFormat string, result any) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		return PrettyFormat(w, result)
	case constants.OutputFormatCSV:
		return CsvFormat(w, result)
	case constants.OutputFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case constants.OutputFormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", outputFormat)
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, result any) error {
	title, fields, err := describe(result)
	if err != nil {
		return err
	}

	width := 0
	for _, f := range fields {
		if len(f.Name) > width {
			width = len(f.Name)
		}
	}

	if _, err := fmt.Fprintf(w, "--- %s ---\n", title); err != nil {
		return err
	}
	for _, f := range fields {
		if _, err := fmt.Fprintf(w, "%-*s | %s\n", width, f.Name, f.Pretty); err != nil {
			return err
		}
	}
	return nil
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(w io.Writer, result any) error {
	_, fields, err := describe(result)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"field", "value"}); err != nil {
		return err
	}
	for _, f := range fields {
		if err := cw.Write([]string{f.Name, f.Raw}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func describe(result any) (string, []field, error) {
	switch r := result.(type) {
	case calc.TipResult:
		return "Tip", []field{
			money("tipAmount", r.TipAmount),
			money("totalAmount", r.TotalAmount),
			money("perPersonAmount", r.PerPersonAmount),
		}, nil
	case calc.DiscountResult:
		return "Discount", []field{
			money("firstDiscountAmount", r.FirstDiscountAmount),
			money("secondDiscountAmount", r.SecondDiscountAmount),
			money("finalPrice", r.FinalPrice),
			money("totalSavings", r.TotalSavings),
			percent("totalDiscountPercent", r.TotalDiscountPercent),
		}, nil
	case calc.PercentageResult:
		fields := []field{
			{Name: "mode", Pretty: string(r.Mode), Raw: string(r.Mode)},
		}
		if r.Mode == calc.ModeWhatIs {
			fields = append(fields, field{Name: "result", Pretty: format.Decimal(r.Result, 2), Raw: number(r.Result, 2)})
		} else {
			fields = append(fields, percent("result", r.Result))
		}
		if !r.Defined {
			fields[len(fields)-1].Pretty += " (undefined)"
		}
		fields = append(fields, field{Name: "defined", Pretty: strconv.FormatBool(r.Defined), Raw: strconv.FormatBool(r.Defined)})
		return "Percentage", fields, nil
	case calc.BMIResult:
		unit := r.IdealWeightRange.Unit
		return "BMI", []field{
			{Name: "bmi", Pretty: format.Decimal(r.BMI, 1), Raw: number(r.BMI, 1)},
			{Name: "classification", Pretty: string(r.Classification), Raw: string(r.Classification)},
			{Name: "idealWeightMin", Pretty: format.Weight(r.IdealWeightRange.Min, unit), Raw: number(r.IdealWeightRange.Min, 1)},
			{Name: "idealWeightMax", Pretty: format.Weight(r.IdealWeightRange.Max, unit), Raw: number(r.IdealWeightRange.Max, 1)},
			{Name: "unit", Pretty: unit, Raw: unit},
		}, nil
	default:
		return "", nil, fmt.Errorf("unsupported result type %T", result)
	}
}

func money(name string, v float64) field {
	return field{Name: name, Pretty: format.Currency(v), Raw: number(v, 2)}
}

func percent(name string, v float64) field {
	return field{Name: name, Pretty: format.Percent(v), Raw: number(v, 2)}
}

func number(v float64, places int) string {
	return strconv.FormatFloat(v, 'f', places, 64)
}
