// Package constants provides shared constants for the quickcalc application.
package constants

// Precision constants
const (
	// CurrencyPlaces is the number of fractional digits kept for currency and
	// percentage outputs.
	CurrencyPlaces = 2

	// BMIPlaces is the number of fractional digits kept for BMI and weights.
	BMIPlaces = 1

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Unit conversion factors
const (
	// KilogramsPerPound converts pounds to kilograms.
	KilogramsPerPound = 0.453592

	// PoundsPerKilogram converts kilograms back to pounds for display.
	PoundsPerKilogram = 2.20462

	// CentimetersPerInch converts inches to centimeters.
	CentimetersPerInch = 2.54

	// CentimetersPerMeter converts centimeters to meters.
	CentimetersPerMeter = 100.0
)

// BMI classification bounds
const (
	// BMIUnderweightBelow is the upper (exclusive) bound of the underweight tier.
	BMIUnderweightBelow = 18.5

	// BMINormalBelow is the upper (exclusive) bound of the normal tier.
	BMINormalBelow = 25.0

	// BMIOverweightBelow is the upper (exclusive) bound of the overweight tier.
	BMIOverweightBelow = 30.0

	// IdealBMIMin and IdealBMIMax bound the ideal weight range.
	IdealBMIMin = 18.5
	IdealBMIMax = 24.9
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "quickcalc.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "QUICKCALC"
)

// Calculator defaults
const (
	// DefaultTipPercent is used by the CLI when no tip percentage is given.
	DefaultTipPercent = 15.0

	// DefaultPeople is used by the CLI when no head count is given.
	DefaultPeople = 1

	// DefaultUnitSystem is the unit system used when none is configured.
	DefaultUnitSystem = "metric"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum JSON body size (64 KB)
	DefaultMaxRequestSizeBytes int64 = 64 * 1024
)
