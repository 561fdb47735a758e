package service

import (
	"context"
	"errors"
	"testing"

	"fitdash/internal/series"
)

type fakeSource struct {
	rows    []map[string]string
	rowsErr error
	plan    string
	planErr error
}

func (f *fakeSource) FetchRows(context.Context) ([]map[string]string, error) {
	return f.rows, f.rowsErr
}

func (f *fakeSource) FetchPlan(context.Context) (string, error) {
	return f.plan, f.planErr
}

func TestReload(t *testing.T) {
	source := &fakeSource{
		rows: []map[string]string{
			{series.ColDate: "6/15/2024", series.ColWeight: "80.4", series.ColSteps: "8421"},
			{series.ColDate: "6/16/2024", series.ColWeight: "80.3"},
			{series.ColDate: "not a date", series.ColWeight: "80.2"},
		},
	}
	state := NewState()
	r := NewRefresher(source, state)

	result, err := r.Reload(context.Background())
	if err != nil {
		t.Fatalf("Reload() error: %v", err)
	}
	if result.Rows != 3 || result.Samples != 2 {
		t.Errorf("result = %+v, want 3 rows, 2 samples", result)
	}
	got := state.Series()
	if len(got) != 2 {
		t.Fatalf("state holds %d samples, want 2", len(got))
	}
	// Feed dates are month/day/year
	if !got[0].Date.Equal(day(15)) {
		t.Errorf("first sample date = %v, want %v", got[0].Date, day(15))
	}
}

func TestReloadFetchFailureKeepsOldSeries(t *testing.T) {
	state := NewState()
	state.Replace(testSeries(5, 80.0))

	source := &fakeSource{rowsErr: errors.New("connection refused")}
	r := NewRefresher(source, state)

	if _, err := r.Reload(context.Background()); err == nil {
		t.Fatal("Reload() succeeded, want error")
	}
	if got := state.Series(); len(got) != 5 {
		t.Errorf("state holds %d samples after failed reload, want 5", len(got))
	}
}

func TestReloadNoUsableRows(t *testing.T) {
	state := NewState()
	state.Replace(testSeries(5, 80.0))

	source := &fakeSource{
		rows: []map[string]string{
			{series.ColDate: "garbage", series.ColWeight: ""},
		},
	}
	r := NewRefresher(source, state)

	_, err := r.Reload(context.Background())
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("Reload() err = %v, want ErrNoData", err)
	}
	if got := state.Series(); len(got) != 5 {
		t.Errorf("state holds %d samples, want previous 5", len(got))
	}
}

func TestLoadPlan(t *testing.T) {
	source := &fakeSource{plan: "# Week 1\n\n- squats"}
	r := NewRefresher(source, NewState())

	plan, err := r.LoadPlan(context.Background())
	if err != nil {
		t.Fatalf("LoadPlan() error: %v", err)
	}
	if plan != source.plan {
		t.Errorf("plan = %q, want %q", plan, source.plan)
	}
}

func TestSetRangeIgnoresUnknownSelector(t *testing.T) {
	state := NewState()
	state.SetRange("30")
	state.SetRange("365")
	if got := state.Range(); got != "30" {
		t.Errorf("Range() = %q, want %q", got, "30")
	}
}
