package database

import (
	"fmt"
	"sort"

	"github.com/lysyi3m/rss-ping/app/state"
)

// SnapshotStore persists seen-entry snapshots in SQLite. It is a drop-in
// alternative to the JSON file store; the whole snapshot is rewritten in
// one transaction on Save.
type SnapshotStore struct {
	db *DB
}

var _ state.StateStore = (*SnapshotStore)(nil)

// NewSnapshotStore creates a snapshot store backed by the given database
func NewSnapshotStore(db *DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// Load reads the full snapshot, per-feed identities ordered oldest first.
func (s *SnapshotStore) Load() (state.Snapshot, error) {
	rows, err := s.db.Query(`
		SELECT feed_url, identity
		FROM seen_entries
		ORDER BY feed_url, position
	`)
	if err != nil {
		return state.Snapshot{}, fmt.Errorf("failed to load snapshot: %w", err)
	}
	defer rows.Close()

	snapshot := state.NewSnapshot()
	for rows.Next() {
		var feedURL, identity string
		if err := rows.Scan(&feedURL, &identity); err != nil {
			return state.Snapshot{}, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		snapshot.Seen[feedURL] = append(snapshot.Seen[feedURL], identity)
	}

	if err := rows.Err(); err != nil {
		return state.Snapshot{}, fmt.Errorf("error iterating snapshot rows: %w", err)
	}

	return snapshot, nil
}

// Save replaces the stored snapshot. Feeds are written in sorted URL
// order so the on-disk form is deterministic.
func (s *SnapshotStore) Save(snapshot state.Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM seen_entries`); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO seen_entries (feed_url, position, identity)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	feedURLs := make([]string, 0, len(snapshot.Seen))
	for feedURL := range snapshot.Seen {
		feedURLs = append(feedURLs, feedURL)
	}
	sort.Strings(feedURLs)

	for _, feedURL := range feedURLs {
		for position, identity := range snapshot.Seen[feedURL] {
			if _, err := stmt.Exec(feedURL, position, identity); err != nil {
				return fmt.Errorf("failed to insert identity: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}

	return nil
}
