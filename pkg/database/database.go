// Package database manages sqlite connections for reading collected feed
// items.
package database

import (
	"database/sql"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Connections are cached per path so the render and serve paths share one
// handle per item store.
var (
	dbCache    = make(map[string]*Database)
	cacheMutex = &sync.Mutex{}
)

// Database wraps a sql.DB with the locking the cache relies on.
type Database struct {
	db     *sql.DB
	mu     sync.RWMutex
	dbPath string
}

// NewDatabase opens a sqlite database, reusing a cached connection for the
// same path when one exists.
func NewDatabase(path string) (*Database, error) {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	if db, ok := dbCache[path]; ok {
		return db, nil
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := applyPragmas(db); err != nil {
		closeQuietly(db)
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		closeQuietly(db)
		return nil, err
	}

	database := &Database{
		db:     db,
		dbPath: path,
	}

	dbCache[path] = database

	return database, nil
}

// applyPragmas puts the connection into WAL mode with a busy timeout so
// concurrent readers don't trip over the collector writing new items.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA temp_store=memory",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return err
		}
	}

	var journalMode string
	if err := db.QueryRow("PRAGMA journal_mode;").Scan(&journalMode); err != nil {
		return err
	}
	if strings.EqualFold(journalMode, "wal") {
		return nil
	}

	_, err := db.Exec("PRAGMA journal_mode=WAL")
	return err
}

func closeQuietly(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("Failed to close database", "error", err)
	}
}

// Close evicts the connection from the cache and closes it.
func (db *Database) Close() error {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	delete(dbCache, db.dbPath)

	db.mu.Lock()
	defer db.mu.Unlock()

	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// DB exposes the underlying sql.DB for queries.
func (db *Database) DB() *sql.DB {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.db
}

// Path reports the file the database was opened from.
func (db *Database) Path() string {
	return db.dbPath
}

// ExecuteSchema runs a DDL statement under the write lock.
func (db *Database) ExecuteSchema(schema string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	_, err := db.db.Exec(schema)
	return err
}

// Transaction runs fn inside a transaction, rolling back on error or panic.
func (db *Database) Transaction(fn func(*sql.Tx) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	tx, err := db.db.Begin()
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				slog.Error("Failed to rollback transaction", "error", rollbackErr)
			}
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			slog.Error("Failed to rollback transaction", "error", rollbackErr)
		}
		return err
	}

	return tx.Commit()
}

// Exists checks if a database file exists. Opening a missing sqlite file
// would create it, so readers check first.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
