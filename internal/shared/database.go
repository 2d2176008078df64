package shared

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// BusyTimeoutMillis is how long a slot write waits on a profile locked by another process.
const BusyTimeoutMillis = 5000

// NewDatabase opens the SQLite file holding the slot table.
//
// File-backed profiles get a busy timeout so a second cinevault process queues behind the
// first instead of failing with SQLITE_BUSY. ":memory:" is passed through unchanged.
func NewDatabase(path string) (*sql.DB, error) {
	dsn := path
	if path != ":memory:" && !strings.Contains(path, "?") {
		dsn = fmt.Sprintf("%s?_busy_timeout=%d", path, BusyTimeoutMillis)
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open slot database %s: %w", path, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach slot database %s: %w", path, err)
	}

	return db, nil
}

// ConfigureDatabase applies the [storage] pool limits; zero keeps the driver default.
//
// A ":memory:" slot table lives only as long as its connection, so keep maxOpenConns at 1 there.
func ConfigureDatabase(db *sql.DB, maxOpenConns, maxIdleConns int) {
	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
	}
	if maxIdleConns > 0 {
		db.SetMaxIdleConns(maxIdleConns)
	}
}
