package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lysyi3m/rss-ping/app/cfg"
	"github.com/lysyi3m/rss-ping/app/config"
	"github.com/lysyi3m/rss-ping/app/database"
	"github.com/lysyi3m/rss-ping/app/feed"
	"github.com/lysyi3m/rss-ping/app/runner"
	"github.com/lysyi3m/rss-ping/app/state"
	"github.com/lysyi3m/rss-ping/app/telegram"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	setupLogging(appCfg.Debug)
	slog.Debug("Starting rss-ping", "version", appCfg.Version)

	sent, err := run(context.Background(), appCfg)
	if err != nil {
		if errors.Is(err, runner.ErrNoFeeds) {
			fmt.Fprintf(os.Stderr, "No feeds configured in %s.\n", appCfg.FeedsFile)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Done. Sent %d messages.\n", sent)
}

func run(ctx context.Context, appCfg *cfg.Cfg) (int, error) {
	loader := config.NewLoader(appCfg.FeedsFile)
	feeds, err := loader.Load()
	if err != nil {
		return 0, fmt.Errorf("failed to load feeds: %w", err)
	}
	slog.Debug("Feeds configuration loaded", "feeds", len(feeds), "path", appCfg.FeedsFile)

	stateStore, cleanup, err := newStateStore(appCfg)
	if err != nil {
		return 0, err
	}
	defer cleanup()

	snapshot, err := stateStore.Load()
	if err != nil {
		return 0, fmt.Errorf("failed to load state: %w", err)
	}
	seen := state.NewStore(snapshot)

	timeout := time.Duration(appCfg.Timeout) * time.Second
	fetcher := feed.NewHTTPFetcher(timeout, appCfg.UserAgent)

	var notifier feed.Notifier
	if appCfg.DryRun {
		notifier = dryRunNotifier{}
	} else {
		notifier = telegram.NewClient(appCfg.TelegramBotToken, appCfg.TelegramChatID, timeout)
	}

	processor := feed.NewProcessor(fetcher, notifier, feed.NewFilterer(), seen)
	r := runner.New(feeds, processor, seen, stateStore)

	return r.Run(ctx)
}

// newStateStore selects the snapshot backend: SQLite when --state-db is
// set, the JSON state file otherwise.
func newStateStore(appCfg *cfg.Cfg) (state.StateStore, func(), error) {
	if appCfg.StateDB == "" {
		return state.NewFileStore(appCfg.StateFile), func() {}, nil
	}

	db, err := database.NewConnection(appCfg.StateDB)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open state database: %w", err)
	}

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to migrate state database: %w", err)
	}
	slog.Debug("State database ready", "path", appCfg.StateDB, "version", version, "dirty", dirty)

	return database.NewSnapshotStore(db), func() { db.Close() }, nil
}

// dryRunNotifier logs payloads instead of delivering them. Entries are
// still marked seen, so a dry run advances state like a real one.
type dryRunNotifier struct{}

func (dryRunNotifier) Send(ctx context.Context, text string) error {
	slog.Info("Dry run, skipping delivery", "message", text)
	return nil
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
