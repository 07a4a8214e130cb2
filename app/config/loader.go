package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultMaxItems = 30

// Loader handles loading and validation of the feeds configuration file.
type Loader struct {
	path string
}

// NewLoader creates a new configuration loader
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads the feeds file and returns the watched feeds in file order.
// A missing file is not an error: it yields an empty list, which the
// caller reports as the no-feeds condition.
func (l *Loader) Load() ([]WatchedFeed, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read feeds file: %w", err)
	}

	var root Root
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse feeds file: %w", err)
	}

	for i := range root.Feeds {
		l.setDefaults(&root.Feeds[i])
	}

	if err := l.validate(root.Feeds); err != nil {
		return nil, fmt.Errorf("invalid feeds file %s: %w", l.path, err)
	}

	return root.Feeds, nil
}

// setDefaults applies default values to a feed entry
func (l *Loader) setDefaults(feed *WatchedFeed) {
	feed.URL = strings.TrimSpace(feed.URL)
	if feed.Name == "" {
		feed.Name = "Feed"
	}
	if feed.MaxItems == 0 {
		feed.MaxItems = defaultMaxItems
	}
}

// validate validates the loaded feed entries
func (l *Loader) validate(feeds []WatchedFeed) error {
	urls := make(map[string]bool, len(feeds))
	for i, feed := range feeds {
		if feed.MaxItems < 0 {
			return fmt.Errorf("feed %d (%s): max_items must be non-negative", i, feed.Name)
		}
		if feed.URL == "" {
			// Feeds without a URL are skipped at run time, not rejected here
			continue
		}
		if urls[feed.URL] {
			slog.Warn("Duplicate feed URL in configuration", "url", feed.URL)
		}
		urls[feed.URL] = true
	}
	return nil
}
