package catalog

import (
	"slices"
	"sort"
	"strings"

	"github.com/desertthunder/cinevault/internal/models"
)

// ViewSize is the length of the featured and newest views.
const ViewSize = 4

// AllGenres matches every genre in [Store.Search].
const AllGenres = "all"

// Store is an immutable, ordered movie catalog.
type Store struct {
	movies []models.Movie
	byID   map[int]int
}

// New builds a Store from movies, keeping their order.
//
// When two movies share an id, [Store.Get] returns the first.
func New(movies []models.Movie) *Store {
	s := &Store{
		movies: slices.Clone(movies),
		byID:   make(map[int]int, len(movies)),
	}
	for i, m := range s.movies {
		if _, exists := s.byID[m.ID]; !exists {
			s.byID[m.ID] = i
		}
	}
	return s
}

// List returns every movie in insertion order.
func (s *Store) List() []models.Movie {
	return slices.Clone(s.movies)
}

// Len returns the number of movies.
func (s *Store) Len() int {
	return len(s.movies)
}

// Get looks a movie up by id.
func (s *Store) Get(id int) (models.Movie, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.Movie{}, false
	}
	return s.movies[i], true
}

// Featured returns the first [ViewSize] movies.
func (s *Store) Featured() []models.Movie {
	return slices.Clone(s.movies[:min(ViewSize, len(s.movies))])
}

// Newest returns up to [ViewSize] movies ordered by release date, newest first.
func (s *Store) Newest() []models.Movie {
	sorted := slices.Clone(s.movies)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Released().After(sorted[j].Released())
	})
	return sorted[:min(ViewSize, len(sorted))]
}

// Genres returns each genre once, in the order it first appears.
func (s *Store) Genres() []string {
	return Genres(s.movies)
}

// Search filters by a case-insensitive title substring and genre.
// An empty query matches every title; an empty genre or [AllGenres] matches every genre.
func (s *Store) Search(query, genre string) []models.Movie {
	return Filter(s.movies, query, genre)
}

// Filter applies the title and genre matching of [Store.Search] to an arbitrary movie list.
func Filter(movies []models.Movie, query, genre string) []models.Movie {
	query = strings.ToLower(strings.TrimSpace(query))
	genre = strings.TrimSpace(genre)

	var matched []models.Movie
	for _, m := range movies {
		if query != "" && !strings.Contains(strings.ToLower(m.Title), query) {
			continue
		}
		if !HasGenre(m, genre) {
			continue
		}
		matched = append(matched, m)
	}
	return matched
}

// HasGenre reports whether m is tagged with genre, ignoring case.
func HasGenre(m models.Movie, genre string) bool {
	if genre == "" || strings.EqualFold(genre, AllGenres) {
		return true
	}
	return slices.ContainsFunc(m.Genres, func(g string) bool {
		return strings.EqualFold(g, genre)
	})
}

// Genres returns each genre of movies once, in first-seen order.
func Genres(movies []models.Movie) []string {
	seen := make(map[string]bool)
	var genres []string
	for _, m := range movies {
		for _, g := range m.Genres {
			if !seen[g] {
				seen[g] = true
				genres = append(genres, g)
			}
		}
	}
	return genres
}
