package metrics

import (
	"testing"

	"fitdash/internal/series"
)

func floatPtr(v float64) *float64 { return &v }

func TestLookup(t *testing.T) {
	if got := Lookup(KeyWeight); got.Unit != "kg" || got.Title != "Weight" {
		t.Errorf("weight entry = %+v", got)
	}
	if got := Lookup(KeySteps); got.Unit != "" || got.Title != "Steps" {
		t.Errorf("steps entry = %+v", got)
	}

	// Unknown keys get the neutral fallback, not a zero value.
	got := Lookup(Key("heartRate"))
	if got.Title != "History" || got.Color == "" {
		t.Errorf("fallback entry = %+v", got)
	}
	if _, ok := got.Value(series.DailySample{Weight: 80}); ok {
		t.Error("fallback accessor should report no value")
	}
}

func TestCatalogCoversDisplayOrder(t *testing.T) {
	for _, k := range DisplayOrder {
		if _, ok := catalog[k]; !ok {
			t.Errorf("display order key %q missing from catalog", k)
		}
	}
	if len(catalog) != len(DisplayOrder) {
		t.Errorf("catalog has %d entries, display order %d", len(catalog), len(DisplayOrder))
	}
}

func TestCatalogAccessors(t *testing.T) {
	sample := series.DailySample{
		Weight:  80.4,
		Protein: 150,
		Muscle:  floatPtr(49.2),
	}

	if v, ok := Lookup(KeyWeight).Value(sample); !ok || v != 80.4 {
		t.Errorf("weight accessor = %v/%v", v, ok)
	}
	if v, ok := Lookup(KeyMuscle).Value(sample); !ok || v != 49.2 {
		t.Errorf("muscle accessor = %v/%v", v, ok)
	}
	if _, ok := Lookup(KeyBodyFat).Value(sample); ok {
		t.Error("body fat accessor should report no value for nil field")
	}

	// The balance card's BMR reads the scale's basal metabolism field.
	basal := 1700
	sample.BasalMetabolism = &basal
	if v, ok := Lookup(KeyBMR).Value(sample); !ok || v != 1700 {
		t.Errorf("bmr accessor = %v/%v, want 1700", v, ok)
	}
}

func TestKeyFromElementID(t *testing.T) {
	tests := []struct {
		id   string
		want Key
		ok   bool
	}{
		{"todayWeight", KeyWeight, true},
		{"todayBoneMass", KeyBoneMass, true},
		{"todayProteinPercentage", KeyProteinPct, true},
		{"todayDeficit", KeyDeficit, true},
		{"todayHeartRate", "", false},
		{"weight", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, ok := KeyFromElementID(tt.id)
			if ok != tt.ok || got != tt.want {
				t.Errorf("KeyFromElementID(%q) = %q/%v, want %q/%v", tt.id, got, ok, tt.want, tt.ok)
			}
		})
	}
}
