package metrics

import (
	"fitdash/internal/series"
)

// Key identifies one displayable metric. Keys are an explicit enumeration;
// they are never derived by string-casing a UI identifier.
type Key string

const (
	// Body metrics
	KeyWeight      Key = "weight"
	KeyMuscle      Key = "muscle"
	KeyBoneMass    Key = "boneMass"
	KeyVisceralFat Key = "visceralFat"

	// Body composition
	KeyProteinPct      Key = "proteinPercentage"
	KeyWaterPct        Key = "waterPercentage"
	KeyBodyFat         Key = "bodyFat"
	KeyBasalMetabolism Key = "basalMetabolism"

	// Nutrition
	KeyCalories Key = "calories"
	KeyProtein  Key = "protein"
	KeyFats     Key = "fats"
	KeyCarbs    Key = "carbs"

	// Activity
	KeySteps       Key = "steps"
	KeySleep       Key = "sleep"
	KeyWaterIntake Key = "waterIntake"

	// Calorie balance
	KeyBMR       Key = "bmr"
	KeyTotalBurn Key = "totalBurn"
	KeyDeficit   Key = "deficit"
)

// DisplayOrder is the catalog in dashboard group order: body metrics,
// composition, nutrition, activity, calorie balance.
var DisplayOrder = []Key{
	KeyWeight, KeyMuscle, KeyBoneMass, KeyVisceralFat,
	KeyProteinPct, KeyWaterPct, KeyBodyFat, KeyBasalMetabolism,
	KeyCalories, KeyProtein, KeyFats, KeyCarbs,
	KeySteps, KeySleep, KeyWaterIntake,
	KeyBMR, KeyTotalBurn, KeyDeficit,
}

// CatalogEntry carries the static display attributes of one metric and the
// accessor that reads its value from a sample. Value reports false when the
// sample has no usable reading for the metric.
type CatalogEntry struct {
	Unit  string
	Color string
	Title string
	Value func(s series.DailySample) (float64, bool)
}

// defaultEntry is returned for unrecognized keys.
var defaultEntry = CatalogEntry{
	Unit:  "",
	Color: "#3B82F6",
	Title: "History",
	Value: func(series.DailySample) (float64, bool) { return 0, false },
}

var catalog = map[Key]CatalogEntry{
	KeyWeight: {
		Unit: "kg", Color: "#EF4444", Title: "Weight",
		Value: func(s series.DailySample) (float64, bool) { return s.Weight, true },
	},
	KeyMuscle: {
		Unit: "kg", Color: "#10B981", Title: "Muscle Mass",
		Value: func(s series.DailySample) (float64, bool) { return fromFloatPtr(s.Muscle) },
	},
	KeyBoneMass: {
		Unit: "kg", Color: "#4299E1", Title: "Bone Mass",
		Value: func(s series.DailySample) (float64, bool) { return fromFloatPtr(s.BoneMass) },
	},
	KeyVisceralFat: {
		Unit: "", Color: "#EF4444", Title: "Visceral Fat",
		Value: func(s series.DailySample) (float64, bool) { return fromIntPtr(s.VisceralFat) },
	},
	KeyProteinPct: {
		Unit: "%", Color: "#10B981", Title: "Protein %",
		Value: func(s series.DailySample) (float64, bool) { return fromFloatPtr(s.ProteinPct) },
	},
	KeyWaterPct: {
		Unit: "%", Color: "#3182CE", Title: "Water %",
		Value: func(s series.DailySample) (float64, bool) { return fromFloatPtr(s.WaterPct) },
	},
	KeyBodyFat: {
		Unit: "%", Color: "#F59E0B", Title: "Body Fat %",
		Value: func(s series.DailySample) (float64, bool) { return fromFloatPtr(s.BodyFat) },
	},
	KeyBasalMetabolism: {
		Unit: "cal", Color: "#8B5CF6", Title: "Basal Metabolism",
		Value: func(s series.DailySample) (float64, bool) { return fromIntPtr(s.BasalMetabolism) },
	},
	KeyCalories: {
		Unit: "cal", Color: "#F59E0B", Title: "Calorie Intake",
		Value: func(s series.DailySample) (float64, bool) { return float64(s.Calories), true },
	},
	KeyProtein: {
		Unit: "g", Color: "#10B981", Title: "Protein Intake",
		Value: func(s series.DailySample) (float64, bool) { return s.Protein, true },
	},
	KeyFats: {
		Unit: "g", Color: "#EF4444", Title: "Fat Intake",
		Value: func(s series.DailySample) (float64, bool) { return s.Fat, true },
	},
	KeyCarbs: {
		Unit: "g", Color: "#F59E0B", Title: "Carbs Intake",
		Value: func(s series.DailySample) (float64, bool) { return s.Carbs, true },
	},
	KeySteps: {
		Unit: "", Color: "#8B5CF6", Title: "Steps",
		Value: func(s series.DailySample) (float64, bool) { return float64(s.Steps), true },
	},
	KeySleep: {
		Unit: "h", Color: "#3182CE", Title: "Sleep",
		Value: func(s series.DailySample) (float64, bool) { return s.Sleep, true },
	},
	KeyWaterIntake: {
		Unit: "L", Color: "#06B6D4", Title: "Water Intake",
		Value: func(s series.DailySample) (float64, bool) { return s.WaterIntake, true },
	},
	KeyBMR: {
		// The data sheet's dedicated bmr column tracks the scale's basal
		// metabolism reading; the balance card reads the same field.
		Unit: "cal", Color: "#8B5CF6", Title: "BMR",
		Value: func(s series.DailySample) (float64, bool) { return fromIntPtr(s.BasalMetabolism) },
	},
	KeyTotalBurn: {
		Unit: "cal", Color: "#F97316", Title: "Total Burn",
		Value: func(s series.DailySample) (float64, bool) { return float64(s.TotalBurn), true },
	},
	KeyDeficit: {
		Unit: "cal", Color: "#3B82F6", Title: "Calorie Deficit",
		Value: func(s series.DailySample) (float64, bool) { return fromIntPtr(s.Deficit) },
	},
}

// Lookup returns the catalog entry for a key, or a neutral fallback for
// unrecognized keys.
func Lookup(k Key) CatalogEntry {
	if e, ok := catalog[k]; ok {
		return e
	}
	return defaultEntry
}

// elementIDs maps dashboard element identifiers back to metric keys. The
// identifiers differ from the keys only in the first character's case.
var elementIDs = func() map[string]Key {
	m := make(map[string]Key, len(DisplayOrder))
	for _, k := range DisplayOrder {
		id := string(k)
		m["today"+upperFirst(id)] = k
	}
	return m
}()

// KeyFromElementID recovers the metric key for a dashboard element
// identifier such as "todayBoneMass". Only known identifiers resolve.
func KeyFromElementID(id string) (Key, bool) {
	k, ok := elementIDs[id]
	return k, ok
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]&^0x20) + s[1:]
}

func fromFloatPtr(p *float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}

func fromIntPtr(p *int) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return float64(*p), true
}
