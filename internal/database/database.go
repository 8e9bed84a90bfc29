// Package database opens and migrates the SQLite file holding the shared
// ledger: a single transaction-history table the settlement engine reads
// its snapshots from.
package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver
)

// Open opens the ledger database and applies the connection pragmas it
// needs. Grid saves rewrite the whole table inside one transaction; WAL
// mode keeps concurrent reads from blocking on a replace, and the busy
// timeout covers the second participant saving at the same moment.
func Open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping ledger database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return nil, fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	return db, nil
}

// HealthCheck verifies the ledger database is reachable.
func HealthCheck(db *sql.DB) error {
	return db.Ping()
}
