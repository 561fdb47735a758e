package series

import "time"

// Column names as they appear in the data sheet header row.
const (
	ColDate             = "date"
	ColWeight           = "actual weight"
	ColCalories         = "total food callories"
	ColProtein          = "total food proteins"
	ColFat              = "total food fats"
	ColCarbs            = "total food carbs"
	ColSteps            = "steps"
	ColSleep            = "sleep"
	ColWaterIntake      = "water in liters"
	ColExerciseCalories = "total exercise calories burn"
	ColStepsCalories    = "total steps calories burn"
	ColBoneMass         = "Bone Mass(kg)"
	ColMuscle           = "Muscle (kg)"
	ColVisceralFat      = "Visceral fat"
	ColBasalMetabolism  = "Basal Metabolism (kcal)"
	ColProteinPct       = "Protein(%)"
	ColWaterPct         = "Water (%)"
	ColBodyFat          = "Body fat (%)"
	ColBMR              = "bmr (metabolic rate calories)"
	ColTotalBurn        = "total calories burn"
	ColDeficit          = "calorie deficit"
	ColDeficitWeight    = "deficit-weight-by-callories"
)

// DailySample is one calendar day's normalized measurements. Date and Weight
// are required; a row without them never becomes a sample. Intake and
// activity counters default to zero, biometric fields are nil when the sheet
// has no usable value for that day.
type DailySample struct {
	Date   time.Time
	Weight float64

	// Nutrition
	Calories int
	Protein  float64
	Fat      float64
	Carbs    float64

	// Activity
	Steps            int
	Sleep            float64
	WaterIntake      float64
	ExerciseCalories int
	StepsCalories    int

	// Body composition (nullable)
	BoneMass        *float64
	Muscle          *float64
	VisceralFat     *int
	BasalMetabolism *int
	ProteinPct      *float64
	WaterPct        *float64
	BodyFat         *float64
	BMR             *int

	// Calorie balance
	TotalBurn     int
	Deficit       *int
	DeficitWeight float64
}
