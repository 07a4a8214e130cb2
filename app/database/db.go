package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection used for state snapshots.
type DB struct {
	*sql.DB
}

// NewConnection opens (and creates if necessary) the SQLite database at
// the given path.
func NewConnection(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// The store is accessed strictly sequentially
	db.SetMaxOpenConns(1)

	return &DB{DB: db}, nil
}
