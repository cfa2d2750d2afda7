// Package output provides utilities for formatting and displaying computed schedules.
package output

import (
	"fmt"
	"strings"

	"github.com/hypotheca/mortgage-forecast/internal/schedule"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(results []schedule.Schedule) {
	fmt.Print(PrettyString(results))
}

// PrettyString renders the human-readable table to a string.
func PrettyString(results []schedule.Schedule) string {
	p := message.NewPrinter(language.English)
	var b strings.Builder
	for i, result := range results {
		fmt.Fprintf(&b, "--- Results for scenario %s ---\n", result.Name)
		fmt.Fprintf(&b, "Date    | Payment      | Remaining     | Asset value   | Overhead   | Total\n")
		fmt.Fprintf(&b, "____    | _______      | _________     | ___________   | ________   | _____\n")
		for _, row := range result.Rows {
			_, _ = p.Fprintf(&b, "%s | %.2f | %.2f | %.2f | %.2f | %.2f\n",
				row.Date, row.Payment, row.RemainingPrincipal, row.AssetValue, row.OverheadCosts, row.Total)
		}
		if len(results) > 1 && i < len(results)-1 {
			fmt.Fprintf(&b, "\n")
		}
	}
	return b.String()
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []schedule.Schedule) {
	fmt.Print(CsvString(results))
}

// CsvString renders the CSV output to a string. The timeline comes from
// the longest scenario; shorter scenarios leave trailing cells empty.
func CsvString(results []schedule.Schedule) string {
	if len(results) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`"date"`)
	months := 0
	longest := 0
	for j, result := range results {
		fmt.Fprintf(&b, `,"payment (%s)","remaining principal (%s)","asset value (%s)","overhead (%s)","total (%s)"`,
			result.Name, result.Name, result.Name, result.Name, result.Name)
		if len(result.Rows) > months {
			months = len(result.Rows)
			longest = j
		}
	}
	b.WriteString("\n")

	for i := 0; i < months; i++ {
		fmt.Fprintf(&b, `"%s"`, results[longest].Rows[i].Date)
		for _, result := range results {
			if i >= len(result.Rows) {
				b.WriteString(`,"","","","",""`)
				continue
			}
			r := result.Rows[i]
			fmt.Fprintf(&b, `,"%.2f","%.2f","%.2f","%.2f","%.2f"`,
				r.Payment, r.RemainingPrincipal, r.AssetValue, r.OverheadCosts, r.Total)
		}
		b.WriteString("\n")
	}
	return b.String()
}
