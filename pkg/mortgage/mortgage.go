// Package mortgage implements closed-form monthly amortization schedules
// for annuity and linear mortgages.
//
// All schedule functions are pure: they allocate a fresh slice per call,
// keep no internal state, and are safe to invoke concurrently. Schedules
// are indexed from 0 where entry i describes month i+1 of the term.
//
// Both remaining-principal functions use the same reference convention:
// entry i is the balance entering month i+1, before that month's principal
// reduction is applied. Entry 0 therefore always equals the full principal.
package mortgage

import (
	"errors"
	"fmt"
	"math"

	"github.com/hypotheca/mortgage-forecast/pkg/constants"
	"github.com/hypotheca/mortgage-forecast/pkg/mathutil"
)

var (
	// ErrInvalidInput indicates a mortgage parameter outside the supported
	// domain (non-positive principal or term, rate outside [0, 1)).
	ErrInvalidInput = errors.New("invalid mortgage input")

	// ErrNumericOverflow indicates a computed schedule value escaped the
	// representable float64 range.
	ErrNumericOverflow = errors.New("schedule value out of numeric range")
)

// Policy captures the tax treatment applied to interest payments. The
// zero value applies no deduction adjustment; use DefaultPolicy for the
// standard treatment.
type Policy struct {
	// NonDeductibleInterestShare is the fraction of each interest payment
	// subtracted from the gross payment to form the net payment.
	NonDeductibleInterestShare float64
}

// DefaultPolicy is the standard owner-occupied interest treatment.
var DefaultPolicy = Policy{NonDeductibleInterestShare: constants.NonDeductibleInterestShare}

// validateTerms checks the shared input domain for schedule functions.
// Interest rates are nominal annual fractions; a rate of 1 or more almost
// certainly means the caller passed a percentage, so it is rejected.
func validateTerms(principal, interestRate float64, years int) error {
	if years <= 0 {
		return fmt.Errorf("%w: term must be a positive number of years, got %d", ErrInvalidInput, years)
	}
	if principal <= 0 {
		return fmt.Errorf("%w: principal must be positive, got %.2f", ErrInvalidInput, principal)
	}
	if interestRate < 0 || interestRate >= 1 {
		return fmt.Errorf("%w: interest rate must be a fraction in [0, 1), got %v", ErrInvalidInput, interestRate)
	}
	return nil
}

// checkFinite guards against overflow for pathological inputs; any Inf or
// NaN in the schedule is surfaced rather than returned silently.
func checkFinite(schedule []float64) error {
	for i, val := range schedule {
		if !mathutil.IsFinite(val) {
			return fmt.Errorf("%w: entry %d is %v", ErrNumericOverflow, i, val)
		}
	}
	return nil
}

// AnnuityGrossPayment calculates the constant gross monthly payment for an
// annuity mortgage using the standard amortization formula.
func AnnuityGrossPayment(principal, interestRate float64, years int) (float64, error) {
	if err := validateTerms(principal, interestRate, years); err != nil {
		return 0, err
	}
	months := years * constants.MonthsPerYear
	if interestRate == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(months), nil
	}

	periodicRate := interestRate / constants.MonthsPerYear
	power := math.Pow(1.00+periodicRate, float64(months))
	discountFactor := (power - 1.00) / power
	return principal * periodicRate / discountFactor, nil
}

// AnnuityPayments calculates the net monthly payment for each month of an
// annuity mortgage. The gross payment is constant; the net payment rises
// over the term as the deductible interest portion shrinks.
func (p Policy) AnnuityPayments(principal, interestRate float64, years int) ([]float64, error) {
	gross, err := AnnuityGrossPayment(principal, interestRate, years)
	if err != nil {
		return nil, err
	}

	months := years * constants.MonthsPerYear
	periodicRate := interestRate / constants.MonthsPerYear
	payments := make([]float64, months)
	balance := principal
	for i := range payments {
		interest := balance * periodicRate
		payments[i] = gross - p.NonDeductibleInterestShare*interest
		balance -= gross - interest
	}
	return payments, checkFinite(payments)
}

// AnnuityRemainingPrincipal calculates the outstanding balance for each
// month of an annuity mortgage. Entry i is the balance entering month i+1;
// entry 0 equals the principal and the balance after the final month
// approaches zero up to floating-point residue.
func AnnuityRemainingPrincipal(principal, interestRate float64, years int) ([]float64, error) {
	gross, err := AnnuityGrossPayment(principal, interestRate, years)
	if err != nil {
		return nil, err
	}

	months := years * constants.MonthsPerYear
	periodicRate := interestRate / constants.MonthsPerYear
	schedule := make([]float64, months)
	balance := principal
	for i := range schedule {
		schedule[i] = balance
		interest := balance * periodicRate
		balance -= gross - interest
	}
	return schedule, checkFinite(schedule)
}

// LinearRemainingPrincipal calculates the outstanding balance for each
// month of a linear mortgage. Entry i is the balance entering month i+1,
// so the final entry sits one repayment increment above zero.
func LinearRemainingPrincipal(principal float64, years int) ([]float64, error) {
	if err := validateTerms(principal, 0, years); err != nil {
		return nil, err
	}

	months := years * constants.MonthsPerYear
	increment := principal / float64(months)
	schedule := make([]float64, months)
	for i := range schedule {
		schedule[i] = principal - increment*float64(i)
	}
	return schedule, checkFinite(schedule)
}

// LinearPayments calculates the net monthly payment for each month of a
// linear mortgage: a constant principal repayment plus interest on the
// balance entering that month, adjusted for deductibility. Payments
// strictly decrease over the term when the interest rate is positive.
func (p Policy) LinearPayments(principal, interestRate float64, years int) ([]float64, error) {
	if err := validateTerms(principal, interestRate, years); err != nil {
		return nil, err
	}

	remaining, err := LinearRemainingPrincipal(principal, years)
	if err != nil {
		return nil, err
	}

	months := years * constants.MonthsPerYear
	periodicRate := interestRate / constants.MonthsPerYear
	increment := principal / float64(months)
	payments := make([]float64, months)
	for i, balance := range remaining {
		interest := balance * periodicRate
		payments[i] = increment + interest - p.NonDeductibleInterestShare*interest
	}
	return payments, checkFinite(payments)
}
