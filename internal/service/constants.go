package service

const (
	// Daily targets used when the config doesn't set its own
	DefaultProteinTargetGrams = 170
	DefaultStepsTarget        = 8000

	// Auto-refresh cadence
	DefaultRefreshMinutes = 5
)
