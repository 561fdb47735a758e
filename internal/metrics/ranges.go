package metrics

// Range is a target band for one metric. ShowProgress selects the graduated
// classification policy; ProgressOnly suppresses status coloring entirely
// and leaves only a neutral position-in-range.
type Range struct {
	Min          float64
	Max          float64
	Unit         string
	ShowProgress bool
	ProgressOnly bool
}

// Weight-proportional factors and offsets for the personalized ranges.
const (
	musclePctMin = 0.60
	musclePctMax = 0.65

	bonePctMin = 0.03
	bonePctMax = 0.04

	// Rough basal metabolism estimate: 22 kcal per kg, +/-10%.
	basalPerKg   = 22.0
	basalSpread  = 0.1
	burnSedentary = 1.3
	burnModerate  = 1.6

	// Intake target reflects a weight-loss deficit off total burn.
	deficitLow  = 500.0
	deficitHigh = 300.0
)

// baseRanges are the static defaults, defined for a nominal baseline rather
// than a particular person. Module-private; callers only ever see copies.
var baseRanges = map[Key]Range{
	KeyWeight: {Min: 65, Max: 85, Unit: "kg"},
	// Muscle and bone fall back to the weight range's 75 kg midpoint when no
	// reference weight is available.
	KeyMuscle:      {Min: 75 * musclePctMin, Max: 75 * musclePctMax, Unit: "kg"},
	KeyBoneMass:    {Min: 75 * bonePctMin, Max: 75 * bonePctMax, Unit: "kg"},
	KeyVisceralFat: {Min: 1, Max: 12},

	KeyProteinPct:      {Min: 16, Max: 20, Unit: "%"},
	KeyWaterPct:        {Min: 50, Max: 65, Unit: "%"},
	KeyBodyFat:         {Min: 8, Max: 20, Unit: "%"},
	KeyBasalMetabolism: {Min: 1800, Max: 2200, Unit: "cal"},

	KeyCalories:    {Min: 1500, Max: 2500, Unit: "cal", ShowProgress: true, ProgressOnly: true},
	KeyProtein:     {Min: 140, Max: 180, Unit: "g", ShowProgress: true, ProgressOnly: true},
	KeyFats:        {Min: 40, Max: 80, Unit: "g", ShowProgress: true, ProgressOnly: true},
	KeyCarbs:       {Min: 150, Max: 250, Unit: "g", ShowProgress: true, ProgressOnly: true},
	KeySteps:       {Min: 6000, Max: 10000, ShowProgress: true, ProgressOnly: true},
	KeySleep:       {Min: 7, Max: 9, Unit: "h", ShowProgress: true},
	KeyWaterIntake: {Min: 2, Max: 3, Unit: "L", ShowProgress: true, ProgressOnly: true},

	KeyBMR:       {Min: 1500, Max: 2500, Unit: "cal", ShowProgress: true, ProgressOnly: true},
	KeyTotalBurn: {Min: 2000, Max: 3000, Unit: "cal", ShowProgress: true, ProgressOnly: true},
	KeyDeficit:   {Min: 300, Max: 500, Unit: "cal", ShowProgress: true, ProgressOnly: true},
}

// Ranges produces the full per-metric target band set for a reference
// weight, recomputed from scratch on every call. With a positive weight the
// five weight-dependent bands (muscle, bone mass, basal metabolism, total
// burn, calorie target) are personalized; otherwise the static defaults
// stand. Pure function; the result is the caller's to keep.
func Ranges(weight float64) map[Key]Range {
	ranges := make(map[Key]Range, len(baseRanges))
	for k, r := range baseRanges {
		ranges[k] = r
	}

	if weight <= 0 {
		return ranges
	}

	ranges[KeyMuscle] = Range{
		Min:  weight * musclePctMin,
		Max:  weight * musclePctMax,
		Unit: "kg",
	}
	ranges[KeyBoneMass] = Range{
		Min:  weight * bonePctMin,
		Max:  weight * bonePctMax,
		Unit: "kg",
	}

	baseBasal := weight * basalPerKg
	ranges[KeyBasalMetabolism] = Range{
		Min:  baseBasal * (1 - basalSpread),
		Max:  baseBasal * (1 + basalSpread),
		Unit: "cal",
	}

	totalBurn := Range{
		Min:          baseBasal * burnSedentary,
		Max:          baseBasal * burnModerate,
		Unit:         "cal",
		ShowProgress: true,
		ProgressOnly: true,
	}
	ranges[KeyTotalBurn] = totalBurn

	ranges[KeyCalories] = Range{
		Min:          totalBurn.Min - deficitLow,
		Max:          totalBurn.Max - deficitHigh,
		Unit:         "cal",
		ShowProgress: true,
		ProgressOnly: true,
	}

	return ranges
}
