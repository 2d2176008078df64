package session

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/desertthunder/cinevault/internal/models"
	"github.com/desertthunder/cinevault/internal/shared"
)

// Options configures the mock authenticator.
type Options struct {
	Delay        time.Duration
	DemoEmail    string
	DemoPassword string
	DemoName     string
	DemoID       string

	// Now and NewID default to [time.Now] and [shared.GenerateID].
	Now   func() time.Time
	NewID func() string
}

// OptionsFromConfig builds Options from the session section of the config file.
func OptionsFromConfig(cfg shared.SessionConfig) Options {
	return Options{
		Delay:        cfg.LoginDelay(),
		DemoEmail:    cfg.DemoEmail,
		DemoPassword: cfg.DemoPassword,
		DemoName:     cfg.DemoName,
	}
}

func (o Options) withDefaults() Options {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.NewID == nil {
		o.NewID = shared.GenerateID
	}
	if o.DemoID == "" {
		o.DemoID = "1"
	}
	return o
}

// Session holds the current user and the purchase ledger. It is safe for concurrent use.
type Session struct {
	mu        sync.RWMutex
	user      *models.User
	purchases []models.Purchase
	pending   atomic.Int32
	opts      Options
}

// New creates a Session restored from user (nil for anonymous) and purchases.
// Duplicate purchase ids keep their first record.
func New(opts Options, user *models.User, purchases []models.Purchase) *Session {
	s := &Session{opts: opts.withDefaults()}
	if user != nil {
		u := *user
		s.user = &u
	}
	for _, p := range purchases {
		if !s.owned(p.MovieID) {
			s.purchases = append(s.purchases, p)
		}
	}
	return s
}

// Login authenticates after the configured delay.
//
// Any non-empty email and password pair succeeds. The demo credentials map to
// the fixed demo user; anything else gets a fresh id and the email local part
// as its name. An empty field fails with [shared.ErrMissingField]; values are
// taken as given, so whitespace counts as content.
func (s *Session) Login(ctx context.Context, email, password string) (models.User, error) {
	if err := s.wait(ctx); err != nil {
		return models.User{}, err
	}

	if email == "" || password == "" {
		return models.User{}, fmt.Errorf("%w: email and password", shared.ErrMissingField)
	}

	var user models.User
	if email == s.opts.DemoEmail && password == s.opts.DemoPassword {
		user = models.User{ID: s.opts.DemoID, Email: email, Name: s.opts.DemoName}
	} else {
		user = models.User{ID: s.opts.NewID(), Email: email, Name: shared.LocalPart(email)}
	}

	s.setUser(&user)
	return user, nil
}

// Register creates and signs in a new user after the configured delay.
// All three fields are required; no uniqueness check is made.
func (s *Session) Register(ctx context.Context, name, email, password string) (models.User, error) {
	if err := s.wait(ctx); err != nil {
		return models.User{}, err
	}

	if name == "" || email == "" || password == "" {
		return models.User{}, fmt.Errorf("%w: name, email and password", shared.ErrMissingField)
	}

	user := models.User{ID: s.opts.NewID(), Email: email, Name: name}
	s.setUser(&user)
	return user, nil
}

// Logout clears the current user and reports whether one was signed in. Purchases are kept.
func (s *Session) Logout() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	was := s.user != nil
	s.user = nil
	return was
}

// RecordPurchase adds movieID to the ledger and reports whether it was new.
func (s *Session) RecordPurchase(movieID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.owned(movieID) {
		return false
	}
	s.purchases = append(s.purchases, models.Purchase{MovieID: movieID, PurchasedAt: s.opts.Now().UTC()})
	return true
}

// IsOwned reports whether movieID has been purchased on this profile.
func (s *Session) IsOwned(movieID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.owned(movieID)
}

// User returns the signed-in user.
func (s *Session) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// Authenticated reports whether a user is signed in.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// Purchases returns the ledger in purchase order. The result is never nil.
func (s *Session) Purchases() []models.Purchase {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Purchase, len(s.purchases))
	copy(out, s.purchases)
	return out
}

// Pending reports whether a login or registration is waiting to resolve.
func (s *Session) Pending() bool {
	return s.pending.Load() > 0
}

func (s *Session) setUser(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

// owned must be called with mu held.
func (s *Session) owned(movieID int) bool {
	return slices.ContainsFunc(s.purchases, func(p models.Purchase) bool {
		return p.MovieID == movieID
	})
}

// wait blocks for the configured delay, returning early with ctx's error.
func (s *Session) wait(ctx context.Context) error {
	s.pending.Add(1)
	defer s.pending.Add(-1)

	if err := ctx.Err(); err != nil {
		return err
	}
	if s.opts.Delay <= 0 {
		return nil
	}

	timer := time.NewTimer(s.opts.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
