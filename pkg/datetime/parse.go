// Package datetime provides date and time utility functions.
package datetime

import (
	"strconv"
	"time"

	"github.com/hypotheca/mortgage-forecast/pkg/constants"
)

const (
	// DateTimeLayout is the format expected in config files and is also the
	// output date format.
	DateTimeLayout = constants.DateTimeLayout
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// OffsetDate returns the string-formatted date offset by the given number of
// months relative to the given date.
func OffsetDate(date, layout string, months int) (string, error) {
	t, err := time.Parse(layout, date)
	if err != nil {
		return date, err
	}
	return t.AddDate(0, months, 0).Format(layout), nil
}

// MonthLabels returns the sequence of YYYY-MM labels starting at startDate,
// one per month. An empty startDate yields index-based labels starting at
// month 1.
func MonthLabels(startDate string, months int) ([]string, error) {
	labels := make([]string, months)
	if startDate == "" {
		for i := range labels {
			labels[i] = monthIndexLabel(i)
		}
		return labels, nil
	}

	t, err := time.Parse(DateTimeLayout, startDate)
	if err != nil {
		return nil, err
	}
	for i := range labels {
		labels[i] = t.AddDate(0, i, 0).Format(DateTimeLayout)
	}
	return labels, nil
}

func monthIndexLabel(i int) string {
	// 1-based to match payment period numbering.
	return "month " + strconv.Itoa(i+1)
}
