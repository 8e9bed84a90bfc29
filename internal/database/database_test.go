package database

import (
	"path/filepath"
	"testing"
)

func TestOpen(t *testing.T) {
	t.Run("applies ledger pragmas", func(t *testing.T) {
		db, err := Open(filepath.Join(t.TempDir(), "ledger.db"))
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		defer db.Close()

		var journalMode string
		if err := db.QueryRow("PRAGMA journal_mode").Scan(&journalMode); err != nil {
			t.Fatalf("Failed to read journal_mode: %v", err)
		}
		if journalMode != "wal" {
			t.Errorf("Expected journal_mode wal, got %s", journalMode)
		}

		var foreignKeys int
		if err := db.QueryRow("PRAGMA foreign_keys").Scan(&foreignKeys); err != nil {
			t.Fatalf("Failed to read foreign_keys: %v", err)
		}
		if foreignKeys != 1 {
			t.Errorf("Expected foreign_keys on, got %d", foreignKeys)
		}
	})
}

func TestMigrate(t *testing.T) {
	t.Run("creates the ledger table", func(t *testing.T) {
		db, err := Open(filepath.Join(t.TempDir(), "ledger.db"))
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		defer db.Close()

		if err := Migrate(db); err != nil {
			t.Fatalf("Migrate failed: %v", err)
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM ledger_transaction").Scan(&count); err != nil {
			t.Fatalf("Expected ledger_transaction table to exist: %v", err)
		}
		if count != 0 {
			t.Errorf("Expected empty table, got %d rows", count)
		}

		version, err := SchemaVersion(db)
		if err != nil {
			t.Fatalf("SchemaVersion failed: %v", err)
		}
		if version < 1 {
			t.Errorf("Expected schema version >= 1, got %d", version)
		}
	})

	t.Run("is idempotent across startups", func(t *testing.T) {
		db, err := Open(filepath.Join(t.TempDir(), "ledger.db"))
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		defer db.Close()

		if err := Migrate(db); err != nil {
			t.Fatalf("Migrate failed: %v", err)
		}
		if err := Migrate(db); err != nil {
			t.Fatalf("Second Migrate failed: %v", err)
		}
	})
}

func TestHealthCheck(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if err := HealthCheck(db); err != nil {
		t.Errorf("Expected healthy database, got %v", err)
	}

	db.Close()
	if err := HealthCheck(db); err == nil {
		t.Error("Expected health check to fail on closed database")
	}
}
