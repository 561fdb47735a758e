package service

import (
	"sync"

	"fitdash/internal/series"
)

// State is the single owner of the canonical series and the active range
// selection. The series is only ever replaced wholesale, never mutated in
// place, so readers either see the previous snapshot or the new one.
type State struct {
	mu       sync.RWMutex
	samples  []series.DailySample
	selector string
}

// NewState creates application state with the default one-week window.
func NewState() *State {
	return &State{selector: "7"}
}

// Replace installs a freshly built canonical series, discarding the old one.
func (s *State) Replace(samples []series.DailySample) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.samples = samples
}

// Series returns the current canonical series snapshot.
func (s *State) Series() []series.DailySample {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.samples
}

// SetRange switches the active time-range selector. Unknown selectors are
// ignored so a stray key can't wedge the window.
func (s *State) SetRange(selector string) {
	for _, valid := range series.RangeSelectors {
		if selector == valid {
			s.mu.Lock()
			s.selector = selector
			s.mu.Unlock()
			return
		}
	}
}

// Range returns the active time-range selector.
func (s *State) Range() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selector
}

// Window returns the filtered window for the active range selection.
func (s *State) Window() []series.DailySample {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return series.Filter(s.samples, s.selector)
}
