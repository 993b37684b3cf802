// Package sqlite provides a SQLite-backed implementation of the storage.Ledger interface.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/thegreengroup/loanbook/internal/storage"
)

// Ensure SQLiteLedger implements storage.Ledger
var _ storage.Ledger = (*SQLiteLedger)(nil)

// SQLiteLedger implements storage.Ledger using SQLite.
type SQLiteLedger struct {
	db *sql.DB
}

// New creates a new SQLiteLedger with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteLedger, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL keeps concurrent balance reads consistent while a payment
	// append is in flight.
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	// Run migrations
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteLedger{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteLedger) Close() error {
	return s.db.Close()
}
