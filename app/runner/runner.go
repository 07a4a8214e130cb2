package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lysyi3m/rss-ping/app/config"
	"github.com/lysyi3m/rss-ping/app/state"
)

// ErrNoFeeds is returned when the configuration lists no feeds at all.
var ErrNoFeeds = errors.New("no feeds configured")

// FeedProcessor handles a single watched feed and reports how many
// notifications it dispatched.
type FeedProcessor interface {
	Process(ctx context.Context, wf config.WatchedFeed) (int, error)
}

// Runner iterates the configured feeds in order, aggregates dispatch
// counts and persists the seen-entry state at most once per run, only
// when something changed.
type Runner struct {
	feeds      []config.WatchedFeed
	processor  FeedProcessor
	seen       *state.Store
	stateStore state.StateStore
}

// New creates a runner
func New(feeds []config.WatchedFeed, processor FeedProcessor, seen *state.Store, stateStore state.StateStore) *Runner {
	return &Runner{
		feeds:      feeds,
		processor:  processor,
		seen:       seen,
		stateStore: stateStore,
	}
}

// Run processes every feed sequentially and returns the total number of
// dispatched notifications. The first fatal error aborts the run before
// any state is persisted.
func (r *Runner) Run(ctx context.Context) (int, error) {
	if len(r.feeds) == 0 {
		return 0, ErrNoFeeds
	}

	start := time.Now()
	sent := 0

	for _, wf := range r.feeds {
		if strings.TrimSpace(wf.URL) == "" {
			slog.Debug("Skipping feed without URL", "feed", wf.Name)
			continue
		}

		n, err := r.processor.Process(ctx, wf)
		sent += n
		if err != nil {
			return sent, fmt.Errorf("failed to process feed %s: %w", wf.Name, err)
		}
	}

	if r.seen.HasChanges() {
		if err := r.stateStore.Save(r.seen.Export()); err != nil {
			return sent, fmt.Errorf("failed to save state: %w", err)
		}
		slog.Debug("State snapshot saved")
	}

	slog.Info("Run completed",
		"feeds", len(r.feeds),
		"duration", time.Since(start),
		"sent", sent,
		"state_changed", r.seen.HasChanges())

	return sent, nil
}
