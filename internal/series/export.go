package series

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// exportHeader is the fixed column set of the CSV export.
var exportHeader = []string{
	"Date",
	"Weight (kg)",
	"Calories (kcal)",
	"Protein (g)",
	"Fat (g)",
	"Carbs (g)",
	"Steps",
	"Exercise Calories (kcal)",
	"Deficit (kcal)",
	"Deficit Weight Impact (kg)",
}

// ExportCSV renders a filtered window as CSV: dates as YYYY-MM-DD, weight to
// one decimal, deficit weight impact to three, and zero-valued or missing
// optional fields as empty cells. Deterministic for a given window.
func ExportCSV(samples []DailySample) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(exportHeader); err != nil {
		return "", fmt.Errorf("writing header: %w", err)
	}

	for _, s := range samples {
		row := []string{
			s.Date.Format("2006-01-02"),
			strconv.FormatFloat(s.Weight, 'f', 1, 64),
			emptyIfZeroInt(s.Calories),
			emptyIfZeroFloat(s.Protein),
			emptyIfZeroFloat(s.Fat),
			emptyIfZeroFloat(s.Carbs),
			emptyIfZeroInt(s.Steps),
			emptyIfZeroInt(s.ExerciseCalories),
			"",
			strconv.FormatFloat(s.DeficitWeight, 'f', 3, 64),
		}
		if s.Deficit != nil {
			row[8] = strconv.Itoa(*s.Deficit)
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("writing row for %s: %w", s.Date.Format("2006-01-02"), err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flushing export: %w", err)
	}
	return sb.String(), nil
}

// ExportFilename names an export file after the active range and export date,
// e.g. fitness_data_7_days_as_of_2025-06-01.csv.
func ExportFilename(selector string, now time.Time) string {
	return fmt.Sprintf("fitness_data_%s_days_as_of_%s.csv", selector, now.Format("2006-01-02"))
}

func emptyIfZeroInt(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}

func emptyIfZeroFloat(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
