package series

import (
	"sort"
	"time"
)

// Build turns the full raw feed into the canonical series: each record is
// normalized, unusable rows are dropped, duplicate dates keep the first
// occurrence in feed order, and the result is sorted ascending by date.
// Building twice from the same feed yields an identical series.
func Build(rows []map[string]string) []DailySample {
	samples := make([]DailySample, 0, len(rows))
	seen := make(map[time.Time]bool, len(rows))

	for _, row := range rows {
		s, ok := NormalizeRow(row)
		if !ok {
			continue
		}
		if seen[s.Date] {
			continue
		}
		seen[s.Date] = true
		samples = append(samples, s)
	}

	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Date.Before(samples[j].Date)
	})

	return samples
}
