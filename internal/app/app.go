// Package app wires the stores into one explicit application context.
//
// [New] opens the configured slot backend, seeds the catalog and rehydrates
// the cart and session from storage. Callers pass the [App] to whatever needs
// it and call [App.Close] on teardown; nothing is held in package globals.
package app

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/cinevault/internal/catalog"
	"github.com/desertthunder/cinevault/internal/checkout"
	"github.com/desertthunder/cinevault/internal/library"
	"github.com/desertthunder/cinevault/internal/models"
	"github.com/desertthunder/cinevault/internal/notify"
	"github.com/desertthunder/cinevault/internal/repositories"
	"github.com/desertthunder/cinevault/internal/session"
	"github.com/desertthunder/cinevault/internal/shared"
	"github.com/desertthunder/cinevault/internal/state"
)

// App holds every store for one profile.
type App struct {
	Config   *shared.Config
	Logger   *log.Logger
	Notifier notify.Notifier
	Catalog  *catalog.Store
	Cart     *state.Cart
	Session  *state.Session
	Checkout *checkout.Processor

	store models.SlotStore
}

// Options overrides the pieces [New] would otherwise build from the config.
type Options struct {
	// Store replaces the backend selected by cfg.Storage.Backend.
	Store models.SlotStore
	// Movies replaces [catalog.Seed].
	Movies []models.Movie
	// Notifier defaults to [notify.Log] on the app logger.
	Notifier notify.Notifier
}

// New builds an App from cfg. The returned App owns the slot backend.
func New(ctx context.Context, cfg *shared.Config, logger *log.Logger, opts Options) (*App, error) {
	store := opts.Store
	if store == nil {
		var err error
		if store, err = repositories.Open(ctx, cfg, logger); err != nil {
			return nil, err
		}
	}

	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.NewLog(logger)
	}

	movies := opts.Movies
	if movies == nil {
		movies = catalog.Seed()
	}

	a := &App{
		Config:   cfg,
		Logger:   logger,
		Notifier: notifier,
		Catalog:  catalog.New(movies),
		store:    store,
	}

	var err error
	if a.Cart, err = state.LoadCart(ctx, store, notifier, logger); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if a.Session, err = state.LoadSession(ctx, store, session.OptionsFromConfig(cfg.Session), notifier, logger); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	a.Checkout = checkout.NewProcessor(a.Cart, a.Session, cfg.Checkout, notifier, logger)

	logger.Debug("application ready",
		"backend", cfg.Storage.Backend,
		"movies", a.Catalog.Len(),
		"cart_lines", a.Cart.Len(),
		"purchases", len(a.Session.Purchases()),
	)

	return a, nil
}

// Movie looks up id in the catalog, failing with [shared.ErrMovieNotFound].
func (a *App) Movie(id int) (models.Movie, error) {
	m, ok := a.Catalog.Get(id)
	if !ok {
		return models.Movie{}, fmt.Errorf("%w: %d", shared.ErrMovieNotFound, id)
	}
	return m, nil
}

// AddToCart adds quantity copies of movie id to the cart.
func (a *App) AddToCart(ctx context.Context, id, quantity int) (models.Movie, error) {
	m, err := a.Movie(id)
	if err != nil {
		return models.Movie{}, err
	}
	return m, a.Cart.Add(ctx, m, quantity)
}

// Library returns the signed-in user's owned movies.
func (a *App) Library() (*library.Library, error) {
	return library.Owned(a.Session, a.Catalog)
}

// Store exposes the slot backend.
func (a *App) Store() models.SlotStore {
	return a.store
}

// Close releases the slot backend.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	if err != nil {
		return fmt.Errorf("failed to close slot store: %w", err)
	}
	return nil
}
