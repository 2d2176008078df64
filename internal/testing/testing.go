// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/desertthunder/cinevault/internal/models"
	"github.com/desertthunder/cinevault/internal/shared"
	"github.com/shopspring/decimal"
)

// ErrInjected is returned by the failing doubles in this package.
var ErrInjected = errors.New("injected failure")

// FailingSlotStore is a [models.SlotStore] test double backed by a map whose operations can be made to fail.
type FailingSlotStore struct {
	mu        sync.Mutex
	slots     map[string][]byte
	FailGet   bool
	FailSet   bool
	FailClose bool
	Sets      int
	Deletes   int
}

func NewFailingSlotStore() *FailingSlotStore {
	return &FailingSlotStore{slots: make(map[string][]byte)}
}

func (f *FailingSlotStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailGet {
		return nil, false, ErrInjected
	}
	v, ok := f.slots[key]
	return v, ok, nil
}

func (f *FailingSlotStore) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailSet {
		return ErrInjected
	}
	f.Sets++
	f.slots[key] = append([]byte(nil), value...)
	return nil
}

func (f *FailingSlotStore) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailSet {
		return ErrInjected
	}
	f.Deletes++
	delete(f.slots, key)
	return nil
}

func (f *FailingSlotStore) Close() error {
	if f.FailClose {
		return ErrInjected
	}
	return nil
}

// Raw returns the stored bytes for key, bypassing any failure flags.
func (f *FailingSlotStore) Raw(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.slots[key]
	return string(v), ok
}

// Put stores value under key, bypassing any failure flags.
func (f *FailingSlotStore) Put(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slots[key] = []byte(value)
}

// Movie builds a minimal catalog entry.
func Movie(id int, title, price string, genres ...string) models.Movie {
	return models.Movie{
		ID:          id,
		Title:       title,
		Price:       decimal.RequireFromString(price),
		ReleaseDate: "2024-01-01",
		Genres:      genres,
		Runtime:     120,
	}
}

// TestConfig returns the default configuration with every delay removed and an in-memory backend.
func TestConfig() *shared.Config {
	cfg := shared.DefaultConfig()
	cfg.Storage.Backend = shared.BackendMemory
	cfg.Session.LoginDelayMS = 0
	cfg.Checkout.ProcessingDelayMS = 0
	return cfg
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
