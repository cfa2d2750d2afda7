// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/hypotheca/mortgage-forecast/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// MortgageWarnings returns soft-issue warnings for a configured mortgage.
// Hard input errors are left to the amortization engines so warnings never
// mask them.
func MortgageWarnings(name string, interestRate float64, years int) []string {
	var warnings []string

	if years > constants.MaxPracticalTermYears {
		warnings = append(warnings, fmt.Sprintf("Mortgage '%s' has a %d-year term, beyond the practical bound of %d years",
			name, years, constants.MaxPracticalTermYears))
	}

	if interestRate >= 1 {
		warnings = append(warnings, fmt.Sprintf("Mortgage '%s' has interest rate %.2f; rates are fractions, not percentages",
			name, interestRate))
	}

	return warnings
}

// PropertyWarnings returns soft-issue warnings for a configured property.
func PropertyWarnings(scenarioName string, value, appreciationRate float64) []string {
	var warnings []string

	if value == 0 {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s' has no property value; overhead costs will be skipped",
			scenarioName))
	}

	if appreciationRate < 0 {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s' has negative appreciation rate %.4f; property value will depreciate",
			scenarioName, appreciationRate))
	}

	return warnings
}
