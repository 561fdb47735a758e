package series

import (
	"strconv"
	"strings"
)

// NormalizeRow maps one raw sheet record into a DailySample. A row is
// discarded (ok=false) only when its date or weight is missing or
// unparseable; every other field is parsed independently and a bad value
// falls back to its default without invalidating the row.
func NormalizeRow(rec map[string]string) (DailySample, bool) {
	date, ok := ParseDate(rec[ColDate])
	if !ok {
		return DailySample{}, false
	}

	weightStr := strings.TrimSpace(rec[ColWeight])
	if weightStr == "" {
		return DailySample{}, false
	}
	weight, err := strconv.ParseFloat(weightStr, 64)
	if err != nil {
		return DailySample{}, false
	}

	return DailySample{
		Date:   date,
		Weight: weight,

		Calories: intField(rec[ColCalories]),
		Protein:  floatField(rec[ColProtein]),
		Fat:      floatField(rec[ColFat]),
		Carbs:    floatField(rec[ColCarbs]),

		Steps:            intField(rec[ColSteps]),
		Sleep:            floatField(rec[ColSleep]),
		WaterIntake:      floatField(rec[ColWaterIntake]),
		ExerciseCalories: intField(rec[ColExerciseCalories]),
		StepsCalories:    intField(rec[ColStepsCalories]),

		BoneMass:        floatPtrField(rec[ColBoneMass]),
		Muscle:          floatPtrField(rec[ColMuscle]),
		VisceralFat:     intPtrField(rec[ColVisceralFat]),
		BasalMetabolism: intPtrField(rec[ColBasalMetabolism]),
		ProteinPct:      floatPtrField(rec[ColProteinPct]),
		WaterPct:        floatPtrField(rec[ColWaterPct]),
		BodyFat:         floatPtrField(rec[ColBodyFat]),
		BMR:             intPtrField(rec[ColBMR]),

		TotalBurn:     intField(rec[ColTotalBurn]),
		Deficit:       intPtrField(rec[ColDeficit]),
		DeficitWeight: floatField(rec[ColDeficitWeight]),
	}, true
}

// floatField parses a fractional value, defaulting to 0.
func floatField(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// intField parses an integer-valued field, truncating any fractional part.
// Defaults to 0.
func intField(s string) int {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return int(v)
}

// floatPtrField parses a nullable biometric value. Blank or garbage → nil;
// an explicit zero is kept as a value.
func floatPtrField(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &v
}

func intPtrField(s string) *int {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	i := int(v)
	return &i
}
