package service

import (
	"strings"
	"testing"
	"time"

	"fitdash/internal/metrics"
	"fitdash/internal/series"
)

func day(d int) time.Time {
	return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }

// testSeries builds n consecutive days ending at weight endWeight, losing
// 0.1 kg per day, with steady intake values.
func testSeries(n int, endWeight float64) []series.DailySample {
	out := make([]series.DailySample, n)
	for i := 0; i < n; i++ {
		out[i] = series.DailySample{
			Date:     day(1 + i),
			Weight:   endWeight + 0.1*float64(n-1-i),
			Calories: 1800,
			Protein:  150,
			Fat:      60,
			Carbs:    180,
			Steps:    8000,
			Sleep:    7.5,
			Deficit:  intPtr(-400),
		}
	}
	return out
}

func newTestQuery(samples []series.DailySample) (*QueryService, *State) {
	state := NewState()
	state.Replace(samples)
	return NewQueryService(state, 170, 8000), state
}

func TestDashboardEmpty(t *testing.T) {
	q, _ := newTestQuery(nil)
	if _, err := q.Dashboard(); err != ErrNoData {
		t.Errorf("Dashboard() on empty state: err = %v, want ErrNoData", err)
	}
}

func TestDashboard(t *testing.T) {
	q, state := newTestQuery(testSeries(30, 80.0))
	state.SetRange("7")

	data, err := q.Dashboard()
	if err != nil {
		t.Fatalf("Dashboard() error: %v", err)
	}

	if data.WindowDays != 7 {
		t.Errorf("WindowDays = %d, want 7", data.WindowDays)
	}
	if data.TotalDays != 30 {
		t.Errorf("TotalDays = %d, want 30", data.TotalDays)
	}
	if !data.Date.Equal(day(30)) {
		t.Errorf("Date = %v, want %v", data.Date, day(30))
	}
	if data.Summary.CurrentWeight != 80.0 {
		t.Errorf("CurrentWeight = %v, want 80.0", data.Summary.CurrentWeight)
	}
	if len(data.Tracking) != len(metrics.DisplayOrder) {
		t.Errorf("len(Tracking) = %d, want %d", len(data.Tracking), len(metrics.DisplayOrder))
	}

	// Window average of 150g against a 170g target
	wantProtein := 150.0 / 170 * 100
	if diff := data.ProteinProgress - wantProtein; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("ProteinProgress = %v, want %v", data.ProteinProgress, wantProtein)
	}
	if data.StepsProgress != 100 {
		t.Errorf("StepsProgress = %v, want 100", data.StepsProgress)
	}
}

func TestDashboardTrackingItems(t *testing.T) {
	samples := testSeries(7, 80.0)
	q, _ := newTestQuery(samples)

	data, err := q.Dashboard()
	if err != nil {
		t.Fatalf("Dashboard() error: %v", err)
	}

	items := make(map[metrics.Key]TrackingItem, len(data.Tracking))
	for _, it := range data.Tracking {
		items[it.Key] = it
	}

	weight := items[metrics.KeyWeight]
	if !weight.HasValue || weight.Display != "80 kg" {
		t.Errorf("weight item = %+v, want value 80 kg", weight)
	}
	if weight.Status != metrics.StatusGood {
		t.Errorf("weight status = %q, want %q", weight.Status, metrics.StatusGood)
	}

	// No body composition logged on the latest day
	muscle := items[metrics.KeyMuscle]
	if muscle.HasValue || muscle.Display != "--" {
		t.Errorf("muscle item = %+v, want absent", muscle)
	}
	if muscle.Status != metrics.StatusNeutral {
		t.Errorf("muscle status = %q, want %q", muscle.Status, metrics.StatusNeutral)
	}

	steps := items[metrics.KeySteps]
	if steps.Display != "8,000" {
		t.Errorf("steps display = %q, want %q", steps.Display, "8,000")
	}
}

func TestChartsMovingAverage(t *testing.T) {
	q, state := newTestQuery(testSeries(30, 80.0))

	state.SetRange("7")
	data, err := q.Charts()
	if err != nil {
		t.Fatalf("Charts() error: %v", err)
	}
	if len(data.Weight) != 7 {
		t.Errorf("len(Weight) = %d, want 7", len(data.Weight))
	}
	if data.WeightMA != nil {
		t.Errorf("WeightMA over 7 points = %v, want nil", data.WeightMA)
	}

	state.SetRange("30")
	data, err = q.Charts()
	if err != nil {
		t.Fatalf("Charts() error: %v", err)
	}
	if want := 30 - data.MAWindow + 1; len(data.WeightMA) != want {
		t.Errorf("len(WeightMA) = %d, want %d", len(data.WeightMA), want)
	}
}

func TestChartsCumulative(t *testing.T) {
	samples := testSeries(7, 80.0)
	for i := range samples {
		samples[i].DeficitWeight = -0.05
	}
	q, _ := newTestQuery(samples)

	data, err := q.Charts()
	if err != nil {
		t.Fatalf("Charts() error: %v", err)
	}
	if len(data.Cumulative) != 7 {
		t.Fatalf("len(Cumulative) = %d, want 7", len(data.Cumulative))
	}
	want := -0.35
	if diff := data.ProjectedTotal - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("ProjectedTotal = %v, want %v", data.ProjectedTotal, want)
	}
}

func TestHistorySkipsMissingReadings(t *testing.T) {
	samples := testSeries(5, 80.0)
	samples[1].BodyFat = floatPtr(15.0)
	samples[3].BodyFat = floatPtr(13.0)
	q, _ := newTestQuery(samples)

	hist, err := q.History(metrics.KeyBodyFat)
	if err != nil {
		t.Fatalf("History() error: %v", err)
	}
	if len(hist.Points) != 2 {
		t.Fatalf("len(Points) = %d, want 2", len(hist.Points))
	}
	if hist.Min != 13.0 || hist.Max != 15.0 || hist.Avg != 14.0 {
		t.Errorf("stats = min %v max %v avg %v, want 13/15/14", hist.Min, hist.Max, hist.Avg)
	}
}

func TestExport(t *testing.T) {
	q, state := newTestQuery(testSeries(30, 80.0))
	state.SetRange("7")

	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	name, contents, err := q.Export(now)
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	if name != "fitness_data_7_days_as_of_2024-07-01.csv" {
		t.Errorf("filename = %q", name)
	}
	// Header plus the seven window days
	lines := strings.Split(strings.TrimSpace(contents), "\n")
	if len(lines) != 8 {
		t.Errorf("export has %d lines, want 8", len(lines))
	}
}

func TestFormatMetricValue(t *testing.T) {
	tests := []struct {
		value    float64
		unit     string
		expected string
	}{
		{80.4, "kg", "80.4 kg"},
		{80, "kg", "80 kg"},
		{8421, "", "8,421"},
		{1234567, "", "1,234,567"},
		{-420, "cal", "-420 cal"},
		{7.5, "h", "7.5 h"},
		{999, "", "999"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := formatMetricValue(tt.value, tt.unit)
			if result != tt.expected {
				t.Errorf("formatMetricValue(%v, %q) = %q, want %q", tt.value, tt.unit, result, tt.expected)
			}
		})
	}
}

func floatPtr(v float64) *float64 { return &v }
