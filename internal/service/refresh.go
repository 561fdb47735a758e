package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"fitdash/internal/series"
)

// FeedSource is the part of the feed client the refresher depends on.
type FeedSource interface {
	FetchRows(ctx context.Context) ([]map[string]string, error)
	FetchPlan(ctx context.Context) (string, error)
}

// Refresher pulls the remote feed, rebuilds the canonical series, and
// installs it into the shared state.
type Refresher struct {
	source FeedSource
	state  *State
	log    *logrus.Entry
}

// NewRefresher creates a refresher over the shared state.
func NewRefresher(source FeedSource, state *State) *Refresher {
	return &Refresher{
		source: source,
		state:  state,
		log:    logrus.WithField("component", "refresher"),
	}
}

// RefreshResult reports what a reload produced.
type RefreshResult struct {
	Rows    int // raw rows in the feed
	Samples int // rows that survived normalization
}

// Reload fetches the data feed and replaces the canonical series. The old
// series stays installed when the fetch fails or yields no usable rows, so
// the dashboard keeps showing the last good data.
func (r *Refresher) Reload(ctx context.Context) (RefreshResult, error) {
	rows, err := r.source.FetchRows(ctx)
	if err != nil {
		r.log.WithError(err).Error("data feed fetch failed")
		return RefreshResult{}, fmt.Errorf("fetching data feed: %w", err)
	}

	samples := series.Build(rows)
	if len(samples) == 0 {
		r.log.WithField("rows", len(rows)).Warn("feed contained no usable rows")
		return RefreshResult{Rows: len(rows)}, ErrNoData
	}

	r.state.Replace(samples)
	r.log.WithFields(logrus.Fields{
		"rows":    len(rows),
		"samples": len(samples),
	}).Info("series reloaded")

	return RefreshResult{Rows: len(rows), Samples: len(samples)}, nil
}

// LoadPlan fetches the workout plan markdown. An unconfigured plan URL
// yields an empty document, not an error.
func (r *Refresher) LoadPlan(ctx context.Context) (string, error) {
	plan, err := r.source.FetchPlan(ctx)
	if err != nil {
		r.log.WithError(err).Error("plan fetch failed")
		return "", fmt.Errorf("fetching plan: %w", err)
	}
	return plan, nil
}
