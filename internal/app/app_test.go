package app

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/desertthunder/cinevault/internal/notify"
	"github.com/desertthunder/cinevault/internal/repositories"
	"github.com/desertthunder/cinevault/internal/shared"
	tu "github.com/desertthunder/cinevault/internal/testing"
)

func TestNew(t *testing.T) {
	ctx := context.Background()
	logger := shared.NewLogger(&bytes.Buffer{})

	t.Run("memory backend with seed catalog", func(t *testing.T) {
		a, err := New(ctx, tu.TestConfig(), logger, Options{Notifier: notify.Discard{}})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		defer a.Close()

		if a.Catalog.Len() != 8 {
			t.Errorf("expected seed catalog, got %d movies", a.Catalog.Len())
		}
		if a.Cart.Len() != 0 || a.Session.Authenticated() {
			t.Error("fresh profile should be empty and anonymous")
		}
		if _, ok := a.Store().(*repositories.MemorySlotStore); !ok {
			t.Errorf("expected memory store, got %T", a.Store())
		}
	})

	t.Run("state survives reopening a sqlite profile", func(t *testing.T) {
		cfg := tu.TestConfig()
		cfg.Storage.Backend = shared.BackendSQLite
		cfg.Storage.Path = filepath.Join(t.TempDir(), "profile.db")

		a, err := New(ctx, cfg, logger, Options{Notifier: notify.Discard{}})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if _, err := a.AddToCart(ctx, 2, 2); err != nil {
			t.Fatalf("AddToCart() error = %v", err)
		}
		if _, err := a.Session.Login(ctx, "user@example.com", "password"); err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		a.Session.RecordPurchase(ctx, 5)
		if err := a.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}

		reopened, err := New(ctx, cfg, logger, Options{Notifier: notify.Discard{}})
		if err != nil {
			t.Fatalf("reopen error = %v", err)
		}
		defer reopened.Close()

		if reopened.Cart.Quantity(2) != 2 {
			t.Errorf("cart not restored: %v", reopened.Cart.Items())
		}
		if user, ok := reopened.Session.User(); !ok || user.Name != "Demo User" {
			t.Errorf("user not restored: %+v", user)
		}

		lib, err := reopened.Library()
		if err != nil {
			t.Fatalf("Library() error = %v", err)
		}
		if lib.Len() != 1 || lib.Entries()[0].Movie.Title != "Poor Things" {
			t.Errorf("library = %v", lib.Entries())
		}
	})

	t.Run("unknown movie", func(t *testing.T) {
		a, _ := New(ctx, tu.TestConfig(), logger, Options{Notifier: notify.Discard{}})
		defer a.Close()

		if _, err := a.AddToCart(ctx, 404, 1); !errors.Is(err, shared.ErrMovieNotFound) {
			t.Errorf("expected ErrMovieNotFound, got %v", err)
		}
	})

	t.Run("load failure closes the store", func(t *testing.T) {
		store := tu.NewFailingSlotStore()
		store.FailGet = true

		if _, err := New(ctx, tu.TestConfig(), logger, Options{Store: store}); !errors.Is(err, shared.ErrSlotBackend) {
			t.Errorf("expected ErrSlotBackend, got %v", err)
		}
	})

	t.Run("Close reports backend errors once", func(t *testing.T) {
		store := tu.NewFailingSlotStore()
		store.FailClose = true

		a, err := New(ctx, tu.TestConfig(), logger, Options{Store: store, Notifier: notify.Discard{}})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if err := a.Close(); err == nil {
			t.Error("expected close error")
		}
		if err := a.Close(); err != nil {
			t.Errorf("second Close() should be a no-op, got %v", err)
		}
	})
}
