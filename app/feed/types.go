package feed

import (
	"context"
	"time"
)

// Entry is the normalized form of a single feed item. Fields mirror what
// feed transports commonly provide; any of them may be empty.
type Entry struct {
	ID        string
	GUID      string
	Link      string
	Title     string
	Summary   string
	Published string
	Updated   string

	PublishedParsed *time.Time
	UpdatedParsed   *time.Time
}

// Fetcher retrieves and parses a feed. Any error marks the fetch result
// as unreliable: the caller skips the feed for this run.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]Entry, error)
}

// Notifier delivers a formatted notification payload. Errors are fatal
// to the whole run.
type Notifier interface {
	Send(ctx context.Context, text string) error
}
