// Package validation provides strict checks for values arriving at the CLI
// and HTTP surfaces. The calculation engine itself never rejects input.
package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/quickcalc/pkg/calc"
	"github.com/iwvelando/quickcalc/pkg/constants"
)

// OutputFormats lists the supported output formats.
var OutputFormats = []string{
	constants.OutputFormatPretty,
	constants.OutputFormatJSON,
	constants.OutputFormatCSV,
	constants.OutputFormatYAML,
}

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	for _, f := range OutputFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("expected output format of %s, got %s",
		strings.Join(OutputFormats, ", "), format)
}

// ValidateUnitSystem checks that a unit system is metric or imperial and
// returns it in canonical form.
func ValidateUnitSystem(units string) (calc.UnitSystem, error) {
	u, err := calc.ParseUnitSystem(units)
	if err != nil {
		return "", fmt.Errorf("invalid unit system: %w", err)
	}
	return u, nil
}

// ValidateMode checks that a percentage mode is one of the supported modes
// and returns it in canonical form.
func ValidateMode(mode string) (calc.Mode, error) {
	m, err := calc.ParseMode(mode)
	if err != nil {
		return "", fmt.Errorf("invalid percentage mode: %w", err)
	}
	return m, nil
}
