package state

import (
	"context"
	"errors"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/cinevault/internal/models"
	"github.com/desertthunder/cinevault/internal/notify"
	"github.com/desertthunder/cinevault/internal/session"
	"github.com/desertthunder/cinevault/internal/shared"
)

// Session persists a [session.Session] to the user and purchases slots.
type Session struct {
	mu       sync.Mutex
	core     *session.Session
	store    models.SlotStore
	notifier notify.Notifier
	logger   *log.Logger

	unsaved bool // purchases slot is behind the ledger
}

// LoadSession restores the user and purchase ledger from store.
// A missing or unreadable user slot yields an anonymous session.
func LoadSession(ctx context.Context, store models.SlotStore, opts session.Options, notifier notify.Notifier, logger *log.Logger) (*Session, error) {
	logger = logger.WithPrefix("session")

	user, found, err := readSlot[models.User](ctx, store, models.SlotUser, logger)
	if err != nil {
		return nil, err
	}

	var restored *models.User
	if found && user.ID != "" {
		restored = &user
		logger.Debug("restored user", "id", user.ID)
	}

	purchases, _, err := readSlot[[]models.Purchase](ctx, store, models.SlotPurchases, logger)
	if err != nil {
		return nil, err
	}

	return &Session{
		core:     session.New(opts, restored, purchases),
		store:    store,
		notifier: notifier,
		logger:   logger,
	}, nil
}

// Login signs in after the configured delay and saves the user slot.
// A cancelled context returns its error without a notification.
func (s *Session) Login(ctx context.Context, email, password string) (models.User, error) {
	user, err := s.core.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, shared.ErrMissingField) {
			s.notifier.Error("Invalid email or password")
		}
		s.logger.Debug("login failed", "error", err)
		return models.User{}, err
	}

	s.notifier.Success("Logged in successfully")
	s.logger.Info("logged in", "user", user.ID)
	return user, s.saveUser(ctx)
}

// Register creates and signs in a user after the configured delay and saves the user slot.
func (s *Session) Register(ctx context.Context, name, email, password string) (models.User, error) {
	user, err := s.core.Register(ctx, name, email, password)
	if err != nil {
		if errors.Is(err, shared.ErrMissingField) {
			s.notifier.Error("All fields are required")
		}
		s.logger.Debug("registration failed", "error", err)
		return models.User{}, err
	}

	s.notifier.Success("Registered and logged in successfully")
	s.logger.Info("registered", "user", user.ID)
	return user, s.saveUser(ctx)
}

// Logout clears the user and deletes the user slot. Purchases are kept.
func (s *Session) Logout(ctx context.Context) error {
	s.core.Logout()
	s.notifier.Success("Logged out successfully")
	return s.saveUser(ctx)
}

// RecordPurchase adds movieID to the ledger and saves it when it was new.
// A duplicate still saves when an earlier write failed, so retries reach the store.
func (s *Session) RecordPurchase(ctx context.Context, movieID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.core.RecordPurchase(movieID) && !s.unsaved {
		return nil
	}

	if err := writeSlot(ctx, s.store, models.SlotPurchases, s.core.Purchases()); err != nil {
		s.unsaved = true
		s.logger.Error("failed to save purchases", "error", err)
		return err
	}
	s.unsaved = false
	return nil
}

func (s *Session) IsOwned(movieID int) bool     { return s.core.IsOwned(movieID) }
func (s *Session) User() (models.User, bool)    { return s.core.User() }
func (s *Session) Authenticated() bool          { return s.core.Authenticated() }
func (s *Session) Purchases() []models.Purchase { return s.core.Purchases() }
func (s *Session) Pending() bool                { return s.core.Pending() }

// saveUser writes the current user, or deletes the slot when anonymous.
func (s *Session) saveUser(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if user, ok := s.core.User(); ok {
		err = writeSlot(ctx, s.store, models.SlotUser, user)
	} else {
		err = deleteSlot(ctx, s.store, models.SlotUser)
	}

	if err != nil {
		s.logger.Error("failed to save user", "error", err)
	}
	return err
}
