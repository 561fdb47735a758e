package metrics

import (
	"math"
	"testing"
)

func TestClassify(t *testing.T) {
	statusBand := Range{Min: 50, Max: 65}
	progressOnly := Range{Min: 1500, Max: 2500, ShowProgress: true, ProgressOnly: true}
	sleepBand := Range{Min: 7, Max: 9, ShowProgress: true}

	tests := []struct {
		name       string
		value      float64
		r          Range
		wantStatus Status
		wantPct    float64
	}{
		// Binary in/out policy
		{"at min is good", 50, statusBand, StatusGood, 100},
		{"at max is good", 65, statusBand, StatusGood, 100},
		{"inside is good", 58, statusBand, StatusGood, 100},
		{"below is danger", 49.9, statusBand, StatusDanger, 0},
		{"above is danger", 65.1, statusBand, StatusDanger, 0},

		// Progress-only: neutral status, linear position, clamped
		{"progress-only midpoint", 2000, progressOnly, StatusNeutral, 50},
		{"progress-only at min", 1500, progressOnly, StatusNeutral, 0},
		{"progress-only overshoot clamps", 3000, progressOnly, StatusNeutral, 100},
		{"progress-only undershoot clamps", 1000, progressOnly, StatusNeutral, 0},

		// Progress with status: under-range maps into the lower half
		{"sleep below min", 6, sleepBand, StatusDanger, 6.0 / 7.0 * 50},
		// Over-range approaches 100 from below
		{"sleep above max", 10, sleepBand, StatusDanger, 100 - (10.0-9.0)/9.0*50},
		// Mid-range is good
		{"sleep mid range", 8, sleepBand, StatusGood, 50},
		// Within 10% of a bound downgrades to warning
		{"sleep near min is warning", 7.1, sleepBand, StatusWarning, (7.1 - 7.0) / 2.0 * 100},
		{"sleep near max is warning", 8.9, sleepBand, StatusWarning, (8.9 - 7.0) / 2.0 * 100},
		{"sleep exactly at min is warning", 7, sleepBand, StatusWarning, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, pct := Classify(tt.value, tt.r)
			if status != tt.wantStatus {
				t.Errorf("status = %v, want %v", status, tt.wantStatus)
			}
			if math.Abs(pct-tt.wantPct) > 0.01 {
				t.Errorf("pct = %v, want %v", pct, tt.wantPct)
			}
		})
	}
}

func TestClassifyPure(t *testing.T) {
	r := Range{Min: 7, Max: 9, ShowProgress: true}
	s1, p1 := Classify(7.5, r)
	s2, p2 := Classify(7.5, r)
	if s1 != s2 || p1 != p2 {
		t.Errorf("Classify not deterministic: (%v,%v) vs (%v,%v)", s1, p1, s2, p2)
	}
}
