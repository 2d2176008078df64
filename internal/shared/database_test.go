package shared

import (
	"path/filepath"
	"testing"
)

func TestNewDatabase(t *testing.T) {
	t.Run("file profile waits on locks", func(t *testing.T) {
		db, err := NewDatabase(filepath.Join(t.TempDir(), "cinevault.db"))
		if err != nil {
			t.Fatalf("NewDatabase() error = %v", err)
		}
		defer db.Close()

		var timeout int
		if err := db.QueryRow("PRAGMA busy_timeout").Scan(&timeout); err != nil {
			t.Fatalf("failed to read busy_timeout: %v", err)
		}
		if timeout != BusyTimeoutMillis {
			t.Errorf("busy_timeout = %d, want %d", timeout, BusyTimeoutMillis)
		}
	})

	t.Run("in-memory", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("NewDatabase() error = %v", err)
		}
		defer db.Close()
		ConfigureDatabase(db, 1, 1)

		if err := db.Ping(); err != nil {
			t.Errorf("Ping() error = %v", err)
		}
	})
}
