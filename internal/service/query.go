package service

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"fitdash/internal/metrics"
	"fitdash/internal/series"
)

var (
	// ErrNoData means the feed produced no usable rows at all.
	ErrNoData = errors.New("no valid data rows in the feed")
	// ErrEmptyWindow means the active range selects no samples.
	ErrEmptyWindow = errors.New("no data in the selected range")
)

// QueryService provides read-only queries for the TUI.
type QueryService struct {
	state         *State
	proteinTarget float64
	stepsTarget   float64
}

// NewQueryService creates a query service over the shared state. Non-positive
// targets fall back to the defaults.
func NewQueryService(state *State, proteinTarget, stepsTarget float64) *QueryService {
	if proteinTarget <= 0 {
		proteinTarget = DefaultProteinTargetGrams
	}
	if stepsTarget <= 0 {
		stepsTarget = DefaultStepsTarget
	}
	return &QueryService{state: state, proteinTarget: proteinTarget, stepsTarget: stepsTarget}
}

// TrackingItem is one metric of the latest sample, classified against its
// personalized range.
type TrackingItem struct {
	Key      metrics.Key
	Title    string
	Display  string // formatted value with unit, "--" when absent
	HasValue bool
	Status   metrics.Status
	Percent  float64
	Color    string
	ShowBar  bool
}

// DashboardData contains everything the dashboard screen renders.
type DashboardData struct {
	Date     time.Time
	Range    string
	Tracking []TrackingItem
	Summary  metrics.Summary

	// Target progress compares the window's averages against the fixed
	// daily targets.
	ProteinTarget   float64
	ProteinProgress float64
	StepsTarget     float64
	StepsProgress   float64

	TotalDays  int
	WindowDays int
}

// Dashboard builds the dashboard view of the active window.
func (q *QueryService) Dashboard() (*DashboardData, error) {
	all := q.state.Series()
	if len(all) == 0 {
		return nil, ErrNoData
	}
	window := q.state.Window()
	if len(window) == 0 {
		return nil, ErrEmptyWindow
	}

	latest := window[len(window)-1]
	ranges := metrics.Ranges(latest.Weight)

	data := &DashboardData{
		Date:       latest.Date,
		Range:      q.state.Range(),
		Summary:    metrics.Summarize(window),
		TotalDays:  len(all),
		WindowDays: len(window),

		ProteinTarget: q.proteinTarget,
		StepsTarget:   q.stepsTarget,
	}
	data.ProteinProgress = metrics.TargetProgress(float64(data.Summary.AvgProtein), q.proteinTarget)
	data.StepsProgress = metrics.TargetProgress(float64(data.Summary.AvgSteps), q.stepsTarget)

	data.Tracking = make([]TrackingItem, 0, len(metrics.DisplayOrder))
	for _, key := range metrics.DisplayOrder {
		entry := metrics.Lookup(key)
		item := TrackingItem{
			Key:   key,
			Title: entry.Title,
			Color: entry.Color,
		}
		value, ok := entry.Value(latest)
		if !ok {
			item.Display = "--"
			item.Status = metrics.StatusNeutral
			data.Tracking = append(data.Tracking, item)
			continue
		}
		item.HasValue = true
		item.Display = formatMetricValue(value, entry.Unit)

		r := ranges[key]
		item.Status, item.Percent = metrics.Classify(value, r)
		item.ShowBar = r.ShowProgress
		data.Tracking = append(data.Tracking, item)
	}

	return data, nil
}

// ChartsData contains the series the charts screen plots.
type ChartsData struct {
	Range string

	Weight   []metrics.Point
	WeightMA []metrics.Point
	MAWindow int

	Macro      []metrics.MacroPoint
	AvgProtein int
	AvgFat     int
	AvgCarbs   int
	AvgTotal   int

	Cumulative     []metrics.Point
	ProjectedTotal float64
}

// MAWindowDays is the smoothing window of the weight chart overlay.
const MAWindowDays = 14

// Charts builds the chart series for the active window.
func (q *QueryService) Charts() (*ChartsData, error) {
	if len(q.state.Series()) == 0 {
		return nil, ErrNoData
	}
	window := q.state.Window()
	if len(window) == 0 {
		return nil, ErrEmptyWindow
	}

	data := &ChartsData{
		Range:    q.state.Range(),
		MAWindow: MAWindowDays,
	}

	data.Weight = make([]metrics.Point, len(window))
	for i, s := range window {
		data.Weight[i] = metrics.Point{Date: s.Date, Value: s.Weight}
	}
	data.WeightMA = metrics.MovingAverage(data.Weight, MAWindowDays)

	data.Macro = metrics.MacroSeries(window)
	data.AvgProtein, data.AvgFat, data.AvgCarbs, data.AvgTotal = metrics.MacroAverages(data.Macro)

	data.Cumulative = metrics.CumulativeDeficitProjection(window)
	if len(data.Cumulative) > 0 {
		data.ProjectedTotal = data.Cumulative[len(data.Cumulative)-1].Value
	}

	return data, nil
}

// MetricHistory is one metric's series over the active window, with the
// aggregate stats shown in the detail panel.
type MetricHistory struct {
	Key    metrics.Key
	Title  string
	Unit   string
	Color  string
	Points []metrics.Point
	Avg    float64
	Min    float64
	Max    float64
}

// History extracts one metric's history from the active window. Days without
// a usable reading are skipped rather than plotted as zero.
func (q *QueryService) History(key metrics.Key) (*MetricHistory, error) {
	if len(q.state.Series()) == 0 {
		return nil, ErrNoData
	}
	window := q.state.Window()
	if len(window) == 0 {
		return nil, ErrEmptyWindow
	}

	entry := metrics.Lookup(key)
	hist := &MetricHistory{
		Key:   key,
		Title: entry.Title,
		Unit:  entry.Unit,
		Color: entry.Color,
	}

	var sum float64
	for _, s := range window {
		v, ok := entry.Value(s)
		if !ok {
			continue
		}
		if len(hist.Points) == 0 || v < hist.Min {
			hist.Min = v
		}
		if len(hist.Points) == 0 || v > hist.Max {
			hist.Max = v
		}
		sum += v
		hist.Points = append(hist.Points, metrics.Point{Date: s.Date, Value: v})
	}
	if n := len(hist.Points); n > 0 {
		hist.Avg = sum / float64(n)
	}

	return hist, nil
}

// Export renders the active window as CSV and names the file after the range
// and the current date.
func (q *QueryService) Export(now time.Time) (filename, contents string, err error) {
	if len(q.state.Series()) == 0 {
		return "", "", ErrNoData
	}
	window := q.state.Window()
	if len(window) == 0 {
		return "", "", ErrEmptyWindow
	}

	contents, err = series.ExportCSV(window)
	if err != nil {
		return "", "", err
	}
	return series.ExportFilename(q.state.Range(), now), contents, nil
}

// formatMetricValue renders a reading for display: whole numbers get thousand
// separators, fractional readings keep their natural decimals.
func formatMetricValue(value float64, unit string) string {
	var s string
	if value == float64(int64(value)) {
		s = groupThousands(int64(value))
	} else {
		s = strconv.FormatFloat(value, 'f', 1, 64)
	}
	if unit != "" {
		s += " " + unit
	}
	return s
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
