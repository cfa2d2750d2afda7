// Package property implements monthly property valuation and recurring
// home-ownership overhead cost schedules.
//
// All functions are pure and allocate fresh slices per call; see package
// mortgage for the shared indexing convention (entry i describes month i+1).
package property

import (
	"errors"
	"fmt"
	"math"

	"github.com/hypotheca/mortgage-forecast/pkg/constants"
	"github.com/hypotheca/mortgage-forecast/pkg/mathutil"
)

var (
	// ErrInvalidInput indicates a parameter outside the supported domain.
	ErrInvalidInput = errors.New("invalid property input")

	// ErrNumericOverflow indicates a computed schedule value escaped the
	// representable float64 range.
	ErrNumericOverflow = errors.New("schedule value out of numeric range")
)

// Rates holds the yearly overhead cost rates applied to the current
// property value. The struct is treated as frozen configuration; callers
// construct it once and pass it by value.
type Rates struct {
	YearlyInsurance    float64
	YearlyAssociation  float64
	YearlyPropertyLevy float64
}

// DefaultRates carries the standard insurance, owners' association, and
// municipal levy rates.
var DefaultRates = Rates{
	YearlyInsurance:    constants.YearlyInsurance,
	YearlyAssociation:  constants.YearlyAssociation,
	YearlyPropertyLevy: constants.YearlyPropertyLevy,
}

// Total returns the combined yearly overhead rate.
func (r Rates) Total() float64 {
	return r.YearlyInsurance + r.YearlyAssociation + r.YearlyPropertyLevy
}

// Compound returns the value compounded monthly at yearlyRate/12 for each
// of the given months: entry i = initialValue * (1 + yearlyRate/12)^i.
// A negative yearlyRate models depreciation; months of zero yields an
// empty schedule.
func Compound(initialValue float64, months int, yearlyRate float64) ([]float64, error) {
	if months < 0 {
		return nil, fmt.Errorf("%w: months must not be negative, got %d", ErrInvalidInput, months)
	}

	monthlyRate := yearlyRate / constants.MonthsPerYear
	schedule := make([]float64, months)
	for i := range schedule {
		schedule[i] = initialValue * math.Pow(1+monthlyRate, float64(i))
	}
	return schedule, checkFinite(schedule)
}

// AssetAppreciation returns the property value at the start of each month
// over the given term, compounding monthly from initialValue.
func AssetAppreciation(initialValue, yearlyRate float64, years int) ([]float64, error) {
	if years <= 0 {
		return nil, fmt.Errorf("%w: term must be a positive number of years, got %d", ErrInvalidInput, years)
	}
	return Compound(initialValue, years*constants.MonthsPerYear, yearlyRate)
}

// OverheadCosts returns the combined monthly insurance, association, and
// levy cost for each month of the term, scaled to the appreciating
// property value.
func (r Rates) OverheadCosts(initialValue, yearlyRate float64, years int) ([]float64, error) {
	values, err := AssetAppreciation(initialValue, yearlyRate, years)
	if err != nil {
		return nil, err
	}

	monthlyRate := r.Total() / constants.MonthsPerYear
	costs := make([]float64, len(values))
	for i, value := range values {
		costs[i] = value * monthlyRate
	}
	// TODO: add one-time purchase costs (notary, transfer tax) to the first month
	return costs, checkFinite(costs)
}

func checkFinite(schedule []float64) error {
	for i, val := range schedule {
		if !mathutil.IsFinite(val) {
			return fmt.Errorf("%w: entry %d is %v", ErrNumericOverflow, i, val)
		}
	}
	return nil
}
