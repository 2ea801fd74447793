package validation

import (
	"testing"

	"github.com/iwvelando/quickcalc/pkg/calc"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		expectErr bool
	}{
		{name: "Valid pretty format", format: "pretty", expectErr: false},
		{name: "Valid json format", format: "json", expectErr: false},
		{name: "Valid csv format", format: "csv", expectErr: false},
		{name: "Valid yaml format", format: "yaml", expectErr: false},
		{name: "Empty format", format: "", expectErr: true},
		{name: "Case sensitive - uppercase", format: "PRETTY", expectErr: true},
		{name: "Leading/trailing spaces", format: " pretty ", expectErr: true},
		{name: "XML format not supported", format: "xml", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if tt.expectErr && err == nil {
				t.Errorf("ValidateOutputFormat(%q) expected error but got nil", tt.format)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("ValidateOutputFormat(%q) unexpected error: %v", tt.format, err)
			}
		})
	}
}

func TestValidateUnitSystem(t *testing.T) {
	tests := []struct {
		name      string
		units     string
		expected  calc.UnitSystem
		expectErr bool
	}{
		{name: "Metric", units: "metric", expected: calc.Metric},
		{name: "Imperial", units: "imperial", expected: calc.Imperial},
		{name: "Mixed case and spaces", units: " Metric ", expected: calc.Metric},
		{name: "Unknown", units: "stone", expectErr: true},
		{name: "Empty", units: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateUnitSystem(tt.units)
			if tt.expectErr {
				if err == nil {
					t.Errorf("ValidateUnitSystem(%q) expected error but got nil", tt.units)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateUnitSystem(%q) unexpected error: %v", tt.units, err)
			}
			if got != tt.expected {
				t.Errorf("ValidateUnitSystem(%q) = %q, expected %q", tt.units, got, tt.expected)
			}
		})
	}
}

func TestValidateMode(t *testing.T) {
	tests := []struct {
		name      string
		mode      string
		expected  calc.Mode
		expectErr bool
	}{
		{name: "What is", mode: "what_is", expected: calc.ModeWhatIs},
		{name: "Is what", mode: "is_what", expected: calc.ModeIsWhat},
		{name: "Increase uppercase", mode: "INCREASE", expected: calc.ModeIncrease},
		{name: "Decrease", mode: "decrease", expected: calc.ModeDecrease},
		{name: "Empty", mode: "", expectErr: true},
		{name: "Unknown", mode: "ratio", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateMode(tt.mode)
			if tt.expectErr {
				if err == nil {
					t.Errorf("ValidateMode(%q) expected error but got nil", tt.mode)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateMode(%q) unexpected error: %v", tt.mode, err)
			}
			if got != tt.expected {
				t.Errorf("ValidateMode(%q) = %q, expected %q", tt.mode, got, tt.expected)
			}
		})
	}
}
