package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SlotRepository stores slots as rows of the SQLite slots table.
type SlotRepository struct {
	db *sql.DB
}

// NewSlotRepository creates a new SlotRepository with the given database connection.
//
// The slots table must already exist (see shared.RunMigrations).
func NewSlotRepository(db *sql.DB) *SlotRepository {
	return &SlotRepository{db: db}
}

// Get returns the value stored under key.
func (r *SlotRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, "SELECT value FROM slots WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read slot %s: %w", key, err)
	}

	return value, true, nil
}

// Set upserts the value stored under key.
func (r *SlotRepository) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}

	return nil
}

// Delete removes key if present.
func (r *SlotRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM slots WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete slot %s: %w", key, err)
	}
	return nil
}

// Keys lists every stored slot key in lexical order.
func (r *SlotRepository) Keys(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT key FROM slots ORDER BY key ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query slots: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan slot key: %w", err)
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return keys, nil
}

// Close closes the database handle.
func (r *SlotRepository) Close() error {
	return r.db.Close()
}
