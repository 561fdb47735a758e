package metrics

import (
	"math"
	"time"

	"fitdash/internal/series"
)

const (
	kcalPerGramProtein = 4
	kcalPerGramFat     = 9
	kcalPerGramCarbs   = 4
)

// Point is one (date, value) pair of a chart series.
type Point struct {
	Date  time.Time
	Value float64
}

// Summary holds the aggregate statistics of a filtered window. Averages are
// taken over only the days where the respective field has a usable value, so
// a week of logged weights with two logged meals still yields a meaningful
// calorie average.
type Summary struct {
	CurrentWeight float64
	WeightChange  float64 // last minus first sample, kg
	WeeklyRate    float64 // kg per week over the window's calendar span
	AvgCalories   int
	AvgProtein    int
	AvgSteps      int
	AvgDeficit    int
}

// Summarize computes the summary statistics for a filtered window.
// Single-sample windows report zero change and rate.
func Summarize(window []series.DailySample) Summary {
	if len(window) == 0 {
		return Summary{}
	}

	first := window[0]
	latest := window[len(window)-1]

	var calSum, protSum, stepSum, defSum float64
	var calN, protN, stepN, defN int
	for _, s := range window {
		if s.Calories > 0 {
			calSum += float64(s.Calories)
			calN++
		}
		if s.Protein > 0 {
			protSum += s.Protein
			protN++
		}
		if s.Steps > 0 {
			stepSum += float64(s.Steps)
			stepN++
		}
		if s.Deficit != nil {
			defSum += float64(*s.Deficit)
			defN++
		}
	}

	sum := Summary{
		CurrentWeight: latest.Weight,
		AvgCalories:   roundedAvg(calSum, calN),
		AvgProtein:    roundedAvg(protSum, protN),
		AvgSteps:      roundedAvg(stepSum, stepN),
		AvgDeficit:    roundedAvg(defSum, defN),
	}

	if len(window) > 1 {
		sum.WeightChange = latest.Weight - first.Weight
		spanDays := latest.Date.Sub(first.Date).Hours()/24 + 1
		if spanDays >= 1 {
			sum.WeeklyRate = sum.WeightChange / (spanDays / 7)
		}
	}

	return sum
}

// MovingAverage computes the trailing w-point mean of a chronological series.
// Each output point carries the timestamp of its window's last input point;
// the output is w-1 points shorter than the input, and empty when the input
// has fewer than w points.
func MovingAverage(points []Point, w int) []Point {
	if w <= 0 || len(points) < w {
		return nil
	}

	out := make([]Point, 0, len(points)-w+1)
	var sum float64
	for i, p := range points {
		sum += p.Value
		if i >= w {
			sum -= points[i-w].Value
		}
		if i >= w-1 {
			out = append(out, Point{Date: p.Date, Value: sum / float64(w)})
		}
	}
	return out
}

// CumulativeDeficitProjection produces the running total of per-day weight
// change attributable to calorie deficit, one point per day in window order.
func CumulativeDeficitProjection(window []series.DailySample) []Point {
	out := make([]Point, 0, len(window))
	var total float64
	for _, s := range window {
		total += s.DeficitWeight
		out = append(out, Point{Date: s.Date, Value: total})
	}
	return out
}

// TargetProgress is the achieved share of a fixed daily target as a
// percentage clamped to [0,100]. A non-positive target yields 0.
func TargetProgress(achieved, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return clampPct(achieved / target * 100)
}

// MacroPoint is one day's macronutrient energy split.
type MacroPoint struct {
	Date        time.Time
	ProteinKcal float64
	FatKcal     float64
	CarbsKcal   float64
}

// MacroSeries converts logged macro grams to calories (4/9/4 kcal per gram),
// skipping days with no logged macros at all.
func MacroSeries(window []series.DailySample) []MacroPoint {
	out := make([]MacroPoint, 0, len(window))
	for _, s := range window {
		p := MacroPoint{
			Date:        s.Date,
			ProteinKcal: s.Protein * kcalPerGramProtein,
			FatKcal:     s.Fat * kcalPerGramFat,
			CarbsKcal:   s.Carbs * kcalPerGramCarbs,
		}
		if p.ProteinKcal+p.FatKcal+p.CarbsKcal <= 0 {
			continue
		}
		out = append(out, p)
	}
	return out
}

// MacroAverages averages each macro's calories across the series and totals
// them, for the macro chart caption.
func MacroAverages(points []MacroPoint) (protein, fat, carbs, total int) {
	if len(points) == 0 {
		return 0, 0, 0, 0
	}
	var p, f, c float64
	for _, pt := range points {
		p += pt.ProteinKcal
		f += pt.FatKcal
		c += pt.CarbsKcal
	}
	n := len(points)
	protein = roundedAvg(p, n)
	fat = roundedAvg(f, n)
	carbs = roundedAvg(c, n)
	return protein, fat, carbs, protein + fat + carbs
}

func roundedAvg(sum float64, n int) int {
	if n == 0 {
		return 0
	}
	return int(math.Round(sum / float64(n)))
}
