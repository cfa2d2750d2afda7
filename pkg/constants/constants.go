// Package constants provides shared constants for the mortgage-forecast application.
package constants

// DateTimeLayout is the format used for month labels in config files and
// output.
const DateTimeLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// NonDeductibleInterestShare is the fraction of each interest payment that
// is not tax-deductible; net payments subtract this share of the interest
// portion from the gross payment.
const NonDeductibleInterestShare = 1 - 0.64

// Yearly home-ownership overhead rates, expressed as fractions of the
// current property value.
const (
	// YearlyInsurance is the homeowner insurance rate
	YearlyInsurance = 0.0013

	// YearlyAssociation is the owners' association (VvE) contribution rate
	YearlyAssociation = 0.005

	// YearlyPropertyLevy is the municipal property levy rate.
	// Amsterdam 2025 figure; Rotterdam is a bit higher.
	YearlyPropertyLevy = 0.000577
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)

// Validation constants
const (
	// MaxPracticalTermYears is the soft practical bound on mortgage terms;
	// longer terms are warned about but not rejected.
	MaxPracticalTermYears = 50
)
