// Package schedule combines the pure amortization and property engines
// into per-scenario monthly cash-flow schedules.
package schedule

import (
	"fmt"

	"github.com/hypotheca/mortgage-forecast/internal/config"
	"github.com/hypotheca/mortgage-forecast/pkg/datetime"
	"github.com/hypotheca/mortgage-forecast/pkg/mortgage"
	"github.com/hypotheca/mortgage-forecast/pkg/property"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Row holds the cash-flow figures for one month of a scenario.
type Row struct {
	Date               string
	Payment            float64
	RemainingPrincipal float64
	AssetValue         float64
	OverheadCosts      float64
	Total              float64
}

// Schedule holds the full monthly schedule for one scenario.
type Schedule struct {
	Name string
	Rows []Row
}

// Compute builds the schedule for a single scenario. All underlying
// engines are pure, so repeated calls with the same scenario yield
// identical schedules.
func Compute(logger *zap.Logger, scenario config.Scenario, startDate string) (Schedule, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	result := Schedule{Name: scenario.Name}

	kind, err := mortgage.ParseKind(scenario.Mortgage.Type)
	if err != nil {
		return result, err
	}

	m, err := mortgage.New(kind, scenario.Mortgage.Principal, scenario.Mortgage.InterestRate, scenario.Mortgage.Years)
	if err != nil {
		return result, err
	}

	payments, err := m.MonthlyPayments()
	if err != nil {
		return result, err
	}
	remaining, err := m.RemainingPrincipal()
	if err != nil {
		return result, err
	}

	var values, overhead []float64
	if scenario.Property.HasProperty() {
		values, err = property.AssetAppreciation(scenario.Property.Value, scenario.Property.AppreciationRate, scenario.Mortgage.Years)
		if err != nil {
			return result, err
		}
		overhead, err = property.DefaultRates.OverheadCosts(scenario.Property.Value, scenario.Property.AppreciationRate, scenario.Mortgage.Years)
		if err != nil {
			return result, err
		}
	} else {
		logger.Debug(fmt.Sprintf("scenario %s has no property value; skipping overhead costs", scenario.Name),
			zap.String("op", "schedule.Compute"),
		)
	}

	labels, err := datetime.MonthLabels(startDate, m.Months())
	if err != nil {
		return result, err
	}

	result.Rows = make([]Row, m.Months())
	for i := range result.Rows {
		row := Row{
			Date:               labels[i],
			Payment:            payments[i],
			RemainingPrincipal: remaining[i],
		}
		if values != nil {
			row.AssetValue = values[i]
			row.OverheadCosts = overhead[i]
		}
		row.Total = row.Payment + row.OverheadCosts
		result.Rows[i] = row
	}

	return result, nil
}

// ComputeAll builds the schedules for all active scenarios. Scenarios are
// evaluated concurrently; the engines are pure so no synchronization is
// needed beyond the per-scenario result slots.
func ComputeAll(logger *zap.Logger, conf config.Configuration) ([]Schedule, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var active []config.Scenario
	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "schedule.ComputeAll"),
			)
			continue
		}
		active = append(active, scenario)
	}

	results := make([]Schedule, len(active))
	var g errgroup.Group
	for i, scenario := range active {
		i, scenario := i, scenario
		g.Go(func() error {
			result, err := Compute(logger, scenario, conf.StartDate)
			if err != nil {
				return fmt.Errorf("scenario %s: %w", scenario.Name, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
