package feed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lysyi3m/rss-ping/app/config"
	"github.com/lysyi3m/rss-ping/app/state"
)

// Processor runs the per-feed pipeline: fetch, deduplicate against the
// seen store, filter, format and deliver. Entries are handled strictly in
// feed order, one at a time.
type Processor struct {
	fetcher  Fetcher
	notifier Notifier
	filterer *Filterer
	seen     *state.Store
}

// NewProcessor creates a processor operating on the given seen store.
func NewProcessor(fetcher Fetcher, notifier Notifier, filterer *Filterer, seen *state.Store) *Processor {
	return &Processor{
		fetcher:  fetcher,
		notifier: notifier,
		filterer: filterer,
		seen:     seen,
	}
}

// Process handles a single watched feed and returns the number of
// delivered notifications. A failed fetch skips the feed and leaves its
// history untouched; a failed delivery aborts the run.
func (p *Processor) Process(ctx context.Context, wf config.WatchedFeed) (int, error) {
	start := time.Now()

	entries, err := p.fetcher.Fetch(ctx, wf.URL)
	if err != nil {
		slog.Warn("Feed fetch failed, skipping", "feed", wf.Name, "url", wf.URL, "error", err)
		return 0, nil
	}

	total := len(entries)
	if len(entries) > wf.MaxItems {
		entries = entries[:wf.MaxItems]
	}

	sent := 0
	duplicates := 0
	filtered := 0
	added := false

	for _, entry := range entries {
		identity := Identity(entry)
		if p.seen.Contains(wf.URL, identity) {
			duplicates++
			continue
		}

		if p.filterer.Passes(entry.Title, entry.Summary, wf.IncludeAny, wf.ExcludeAny) {
			message := BuildMessage(wf.Name, entry.Title, entry.Link, FormatPublished(entry))
			if err := p.notifier.Send(ctx, message); err != nil {
				return sent, fmt.Errorf("failed to deliver notification for feed %s: %w", wf.Name, err)
			}
			sent++
		} else {
			filtered++
		}

		// Filtered-out entries are still marked seen so they are not
		// reconsidered on later runs.
		p.seen.Add(wf.URL, identity)
		added = true
	}

	if added {
		p.seen.Trim(wf.URL)
	}

	slog.Info("Feed processed",
		"feed", wf.Name,
		"duration", time.Since(start),
		"total", total,
		"considered", len(entries),
		"duplicates", duplicates,
		"filtered", filtered,
		"sent", sent)

	return sent, nil
}
