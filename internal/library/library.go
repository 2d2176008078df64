// Package library resolves the purchase ledger into the "My Movies" view.
package library

import (
	"fmt"
	"time"

	"github.com/desertthunder/cinevault/internal/catalog"
	"github.com/desertthunder/cinevault/internal/models"
	"github.com/desertthunder/cinevault/internal/shared"
)

// Ledger is the part of the session the library reads.
type Ledger interface {
	Authenticated() bool
	Purchases() []models.Purchase
}

// Lookup resolves movie ids, usually a [catalog.Store].
type Lookup interface {
	Get(id int) (models.Movie, bool)
}

// Entry is an owned movie with the time it was bought.
type Entry struct {
	Movie       models.Movie `json:"movie"`
	PurchasedAt time.Time    `json:"purchased_at"`
}

// Library is the list of owned movies in purchase order.
type Library struct {
	entries []Entry
}

// Owned builds the library for the signed-in user.
// Purchases whose ids are missing from the catalog are skipped.
func Owned(ledger Ledger, movies Lookup) (*Library, error) {
	if !ledger.Authenticated() {
		return nil, fmt.Errorf("%w: sign in to view your movies", shared.ErrNotAuthenticated)
	}
	return Build(ledger.Purchases(), movies), nil
}

// Build resolves purchases against movies without an authentication check.
func Build(purchases []models.Purchase, movies Lookup) *Library {
	lib := &Library{entries: make([]Entry, 0, len(purchases))}
	for _, p := range purchases {
		m, ok := movies.Get(p.MovieID)
		if !ok {
			continue
		}
		lib.entries = append(lib.entries, Entry{Movie: m, PurchasedAt: p.PurchasedAt})
	}
	return lib
}

// Entries returns every owned movie.
func (l *Library) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of owned movies.
func (l *Library) Len() int {
	return len(l.entries)
}

// Movies returns the owned movies without purchase times.
func (l *Library) Movies() []models.Movie {
	movies := make([]models.Movie, len(l.entries))
	for i, e := range l.entries {
		movies[i] = e.Movie
	}
	return movies
}

// Filter keeps entries whose title contains query and that carry genre.
// Matching follows [catalog.Filter].
func (l *Library) Filter(query, genre string) []Entry {
	matched := catalog.Filter(l.Movies(), query, genre)

	keep := make(map[int]bool, len(matched))
	for _, m := range matched {
		keep[m.ID] = true
	}

	var out []Entry
	for _, e := range l.entries {
		if keep[e.Movie.ID] {
			out = append(out, e)
		}
	}
	return out
}

// Genres returns the genres of owned movies in first-seen order.
func (l *Library) Genres() []string {
	return catalog.Genres(l.Movies())
}

// Play returns the entry for movieID, or [shared.ErrMovieNotFound] when it is not owned.
func (l *Library) Play(movieID int) (Entry, error) {
	for _, e := range l.entries {
		if e.Movie.ID == movieID {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %d is not in your library", shared.ErrMovieNotFound, movieID)
}
