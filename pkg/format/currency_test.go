package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"Zero", 0, "$0.00"},
		{"Small", 57.5, "$57.50"},
		{"Thousands", 1234.56, "$1,234.56"},
		{"Millions", 1234567.8, "$1,234,567.80"},
		{"Negative", -40, "-$40.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.input); got != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(75); got != "75.00%" {
		t.Errorf("Percent(75) = %q, expected %q", got, "75.00%")
	}
	if got := Percent(-33.33); got != "-33.33%" {
		t.Errorf("Percent(-33.33) = %q, expected %q", got, "-33.33%")
	}
}

func TestWeight(t *testing.T) {
	if got := Weight(56.7, "kg"); got != "56.7 kg" {
		t.Errorf("Weight(56.7, kg) = %q, expected %q", got, "56.7 kg")
	}
}

func TestDecimal(t *testing.T) {
	if got := Decimal(22.9, 1); got != "22.9" {
		t.Errorf("Decimal(22.9, 1) = %q, expected %q", got, "22.9")
	}
}
