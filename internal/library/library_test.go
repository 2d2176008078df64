package library

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/desertthunder/cinevault/internal/catalog"
	"github.com/desertthunder/cinevault/internal/models"
	"github.com/desertthunder/cinevault/internal/shared"
)

type fakeLedger struct {
	authenticated bool
	purchases     []models.Purchase
}

func (f fakeLedger) Authenticated() bool          { return f.authenticated }
func (f fakeLedger) Purchases() []models.Purchase { return f.purchases }

func entryIDs(entries []Entry) []int {
	ids := make([]int, len(entries))
	for i, e := range entries {
		ids[i] = e.Movie.ID
	}
	return ids
}

func TestOwned(t *testing.T) {
	store := catalog.New(catalog.Seed())
	bought := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)

	t.Run("requires sign in", func(t *testing.T) {
		_, err := Owned(fakeLedger{purchases: []models.Purchase{{MovieID: 1}}}, store)
		if !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("purchase order and unknown ids", func(t *testing.T) {
		ledger := fakeLedger{authenticated: true, purchases: []models.Purchase{
			{MovieID: 5, PurchasedAt: bought},
			{MovieID: 404},
			{MovieID: 2},
		}}

		lib, err := Owned(ledger, store)
		if err != nil {
			t.Fatalf("Owned() error = %v", err)
		}
		if got := entryIDs(lib.Entries()); !slices.Equal(got, []int{5, 2}) {
			t.Errorf("Entries() = %v, want [5 2]", got)
		}
		if !lib.Entries()[0].PurchasedAt.Equal(bought) {
			t.Error("purchase time not carried over")
		}
	})
}

func TestLibrary(t *testing.T) {
	store := catalog.New(catalog.Seed())
	lib := Build([]models.Purchase{{MovieID: 1}, {MovieID: 6}, {MovieID: 2}}, store)

	t.Run("Filter", func(t *testing.T) {
		tt := []struct {
			query string
			genre string
			want  []int
		}{
			{want: []int{1, 6, 2}},
			{genre: "all", want: []int{1, 6, 2}},
			{genre: "drama", want: []int{6}},
			{query: "the", want: []int{2}},
			{query: "dune", genre: "Crime", want: nil},
		}

		for _, tc := range tt {
			got := entryIDs(lib.Filter(tc.query, tc.genre))
			if !slices.Equal(got, tc.want) && !(len(got) == 0 && len(tc.want) == 0) {
				t.Errorf("Filter(%q, %q) = %v, want %v", tc.query, tc.genre, got, tc.want)
			}
		}
	})

	t.Run("Genres", func(t *testing.T) {
		want := []string{"Science Fiction", "Adventure", "Drama", "Romance", "Crime", "Mystery", "Thriller"}
		if got := lib.Genres(); !slices.Equal(got, want) {
			t.Errorf("Genres() = %v, want %v", got, want)
		}
	})

	t.Run("Play", func(t *testing.T) {
		e, err := lib.Play(6)
		if err != nil || e.Movie.Title != "Challengers" {
			t.Errorf("Play(6) = (%q, %v)", e.Movie.Title, err)
		}
		if _, err := lib.Play(3); !errors.Is(err, shared.ErrMovieNotFound) {
			t.Errorf("expected ErrMovieNotFound, got %v", err)
		}
	})
}
