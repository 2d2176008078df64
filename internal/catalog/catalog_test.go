package catalog

import (
	"slices"
	"testing"

	"github.com/desertthunder/cinevault/internal/models"
)

func movie(id int, date string, genres ...string) models.Movie {
	return models.Movie{ID: id, Title: "Movie " + string(rune('A'+id)), ReleaseDate: date, Genres: genres}
}

func ids(movies []models.Movie) []int {
	out := make([]int, len(movies))
	for i, m := range movies {
		out[i] = m.ID
	}
	return out
}

func TestStore(t *testing.T) {
	t.Run("List keeps insertion order and copies", func(t *testing.T) {
		s := New([]models.Movie{movie(3, "2020-01-01"), movie(1, "2021-01-01")})

		list := s.List()
		if got := ids(list); !slices.Equal(got, []int{3, 1}) {
			t.Errorf("List() ids = %v", got)
		}

		list[0].Title = "changed"
		if m, _ := s.Get(3); m.Title == "changed" {
			t.Error("List() should return a copy")
		}
	})

	t.Run("Get", func(t *testing.T) {
		s := New(Seed())

		m, ok := s.Get(3)
		if !ok || m.Title != "Oppenheimer" {
			t.Errorf("Get(3) = (%q, %v)", m.Title, ok)
		}

		if _, ok := s.Get(999); ok {
			t.Error("Get(999) should report not found")
		}
	})

	t.Run("Featured", func(t *testing.T) {
		tt := []struct {
			name  string
			input []models.Movie
			want  []int
		}{
			{name: "seed", input: Seed(), want: []int{1, 2, 3, 4}},
			{name: "short catalog", input: []models.Movie{movie(9, ""), movie(8, "")}, want: []int{9, 8}},
			{name: "empty", input: nil, want: []int{}},
		}

		for _, tc := range tt {
			t.Run(tc.name, func(t *testing.T) {
				if got := ids(New(tc.input).Featured()); !slices.Equal(got, tc.want) {
					t.Errorf("Featured() = %v, want %v", got, tc.want)
				}
			})
		}
	})

	t.Run("Newest sorts descending and keeps ties stable", func(t *testing.T) {
		s := New([]models.Movie{
			movie(1, "2022-01-01"),
			movie(2, "2024-01-01"),
			movie(3, "2023-01-01"),
			movie(4, "2024-01-01"),
		})

		if got := ids(s.Newest()); !slices.Equal(got, []int{2, 4, 3, 1}) {
			t.Errorf("Newest() = %v, want [2 4 3 1]", got)
		}

		if got := ids(s.List()); !slices.Equal(got, []int{1, 2, 3, 4}) {
			t.Errorf("Newest() must not reorder the catalog, got %v", got)
		}
	})

	t.Run("Newest truncates seed", func(t *testing.T) {
		if got := ids(New(Seed()).Newest()); !slices.Equal(got, []int{8, 7, 6, 1}) {
			t.Errorf("Newest() = %v, want [8 7 6 1]", got)
		}
	})

	t.Run("Newest puts malformed dates last", func(t *testing.T) {
		s := New([]models.Movie{movie(1, "soon"), movie(2, "2001-01-01")})
		if got := ids(s.Newest()); !slices.Equal(got, []int{2, 1}) {
			t.Errorf("Newest() = %v, want [2 1]", got)
		}
	})

	t.Run("Genres", func(t *testing.T) {
		s := New([]models.Movie{
			movie(1, "", "Drama", "Crime"),
			movie(2, "", "Crime", "Action"),
		})
		if got := s.Genres(); !slices.Equal(got, []string{"Drama", "Crime", "Action"}) {
			t.Errorf("Genres() = %v", got)
		}
	})

	t.Run("Search", func(t *testing.T) {
		s := New(Seed())

		tt := []struct {
			name  string
			query string
			genre string
			want  []int
		}{
			{name: "empty matches all", want: []int{1, 2, 3, 4, 5, 6, 7, 8}},
			{name: "title case-insensitive", query: "THE", want: []int{2, 7, 8}},
			{name: "genre", genre: "romance", want: []int{5, 6}},
			{name: "all genre", query: "dune", genre: "all", want: []int{1}},
			{name: "title and genre", query: "the", genre: "Action", want: []int{7, 8}},
			{name: "no match", query: "zzz", want: []int{}},
		}

		for _, tc := range tt {
			t.Run(tc.name, func(t *testing.T) {
				if got := ids(s.Search(tc.query, tc.genre)); !slices.Equal(got, tc.want) {
					t.Errorf("Search(%q, %q) = %v, want %v", tc.query, tc.genre, got, tc.want)
				}
			})
		}
	})
}

func TestSeed(t *testing.T) {
	movies := Seed()
	if len(movies) != 8 {
		t.Fatalf("expected 8 seed movies, got %d", len(movies))
	}

	seen := make(map[int]bool)
	for _, m := range movies {
		if seen[m.ID] {
			t.Errorf("duplicate seed id %d", m.ID)
		}
		seen[m.ID] = true

		if m.Price.IsNegative() {
			t.Errorf("%s has a negative price", m.Title)
		}
		if m.Released().IsZero() {
			t.Errorf("%s has an unparseable release date %q", m.Title, m.ReleaseDate)
		}
		if m.VoteAverage < 0 || m.VoteAverage > 10 {
			t.Errorf("%s has vote average %v outside 0..10", m.Title, m.VoteAverage)
		}
	}
}
