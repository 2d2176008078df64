package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Slot keys. Each store writes its whole snapshot to exactly one of them.
const (
	SlotUser      = "user"
	SlotPurchases = "purchasedMovies"
	SlotCart      = "cart"
)

// releaseLayout is the date format of [Movie.ReleaseDate].
const releaseLayout = "2006-01-02"

// Movie is a purchasable catalog title.
type Movie struct {
	ID           int             `json:"id"`
	Title        string          `json:"title"`
	Overview     string          `json:"overview"`
	PosterPath   string          `json:"poster_path"`
	BackdropPath string          `json:"backdrop_path"`
	ReleaseDate  string          `json:"release_date"`
	VoteAverage  float64         `json:"vote_average"`
	Price        decimal.Decimal `json:"price"`
	Genres       []string        `json:"genres"`
	Runtime      int             `json:"runtime"`
	Director     string          `json:"director"`
	Starring     []string        `json:"starring"`
	TrailerKey   string          `json:"trailer_key,omitempty"`
}

// Released parses ReleaseDate. A malformed date yields the zero time, which sorts as oldest.
func (m Movie) Released() time.Time {
	t, err := time.Parse(releaseLayout, m.ReleaseDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Year returns the release year, or 0 when the date is malformed.
func (m Movie) Year() int {
	released := m.Released()
	if released.IsZero() {
		return 0
	}
	return released.Year()
}

// LineItem is one cart entry. Quantity is always positive.
type LineItem struct {
	Movie    Movie `json:"movie"`
	Quantity int   `json:"quantity"`
}

// Subtotal returns price × quantity.
func (l LineItem) Subtotal() decimal.Decimal {
	return l.Movie.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// User is the signed-in profile.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Purchase records that a movie is owned on this profile.
type Purchase struct {
	MovieID     int       `json:"id"`
	PurchasedAt time.Time `json:"purchaseDate"`
}

// SlotStore is a durable key-value store holding one serialized snapshot per key.
type SlotStore interface {
	// Get returns the stored bytes and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the underlying connection.
	Close() error
}
