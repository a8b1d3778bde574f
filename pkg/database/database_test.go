package database

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func TestNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.db")

	db, err := NewDatabase(path)
	if err != nil {
		t.Fatalf("NewDatabase() error = %v", err)
	}
	defer db.Close()

	if db.Path() != path {
		t.Errorf("Path() = %q, want %q", db.Path(), path)
	}

	var journalMode string
	if err := db.DB().QueryRow("PRAGMA journal_mode;").Scan(&journalMode); err != nil {
		t.Fatalf("journal_mode query error = %v", err)
	}
	if journalMode != "wal" {
		t.Errorf("journal_mode = %q, want %q", journalMode, "wal")
	}
}

func TestNewDatabaseReusesConnection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.db")

	first, err := NewDatabase(path)
	if err != nil {
		t.Fatalf("NewDatabase() error = %v", err)
	}
	defer first.Close()

	second, err := NewDatabase(path)
	if err != nil {
		t.Fatalf("NewDatabase() second call error = %v", err)
	}

	if first != second {
		t.Errorf("NewDatabase() returned a new connection for a cached path")
	}
}

func TestExecuteSchemaAndTransaction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.db")

	db, err := NewDatabase(path)
	if err != nil {
		t.Fatalf("NewDatabase() error = %v", err)
	}
	defer db.Close()

	schema := `CREATE TABLE items (id TEXT PRIMARY KEY, url TEXT NOT NULL)`
	if err := db.ExecuteSchema(schema); err != nil {
		t.Fatalf("ExecuteSchema() error = %v", err)
	}

	err = db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO items (id, url) VALUES (?, ?)`, "tw-1", "https://example.com/1")
		return err
	})
	if err != nil {
		t.Fatalf("Transaction() error = %v", err)
	}

	var count int
	if err := db.DB().QueryRow(`SELECT COUNT(*) FROM items`).Scan(&count); err != nil {
		t.Fatalf("count query error = %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestTransactionRollsBackOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.db")

	db, err := NewDatabase(path)
	if err != nil {
		t.Fatalf("NewDatabase() error = %v", err)
	}
	defer db.Close()

	if err := db.ExecuteSchema(`CREATE TABLE items (id TEXT PRIMARY KEY)`); err != nil {
		t.Fatalf("ExecuteSchema() error = %v", err)
	}

	wantErr := sql.ErrNoRows
	err = db.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO items (id) VALUES ('tw-1')`); err != nil {
			return err
		}
		return wantErr
	})
	if err != wantErr {
		t.Fatalf("Transaction() error = %v, want %v", err, wantErr)
	}

	var count int
	if err := db.DB().QueryRow(`SELECT COUNT(*) FROM items`).Scan(&count); err != nil {
		t.Fatalf("count query error = %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d after rollback, want 0", count)
	}
}

func TestExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.db")

	if Exists(path) {
		t.Errorf("Exists(%q) = true before creation", path)
	}

	db, err := NewDatabase(path)
	if err != nil {
		t.Fatalf("NewDatabase() error = %v", err)
	}
	defer db.Close()

	if !Exists(path) {
		t.Errorf("Exists(%q) = false after creation", path)
	}
}
