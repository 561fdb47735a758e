package series

import (
	"strconv"
	"time"
)

// RangeAll selects the entire series.
const RangeAll = "all"

// RangeSelectors are the time windows the dashboard offers.
var RangeSelectors = []string{"7", "14", "30", "90", RangeAll}

// Filter returns the trailing slice of the canonical series matching the
// range selector: a fixed day-count keeps samples dated on or after the last
// sample's date minus (N-1) days, midnight-normalized so the boundary day is
// inclusive. "all", an empty series, or an unparseable selector return the
// input unchanged.
func Filter(samples []DailySample, selector string) []DailySample {
	if selector == RangeAll {
		return samples
	}

	days, err := strconv.Atoi(selector)
	if err != nil || days <= 0 || len(samples) == 0 {
		return samples
	}

	last := samples[len(samples)-1].Date
	cutoff := time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, last.Location()).
		AddDate(0, 0, -(days - 1))

	for i := range samples {
		if !samples[i].Date.Before(cutoff) {
			return samples[i:]
		}
	}
	return samples[len(samples):]
}
