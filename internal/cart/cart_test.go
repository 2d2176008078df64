package cart

import (
	"testing"

	"github.com/desertthunder/cinevault/internal/models"
	"github.com/shopspring/decimal"
)

func movie(id int, price string) models.Movie {
	return models.Movie{ID: id, Title: "Movie", Price: decimal.RequireFromString(price)}
}

func TestCart(t *testing.T) {
	t.Run("Add merges repeated movies", func(t *testing.T) {
		c := New(nil)
		m := movie(1, "19.99")

		if created := c.Add(m, 2); !created {
			t.Error("first Add should create a line")
		}
		if created := c.Add(m, 3); created {
			t.Error("second Add should update the existing line")
		}

		if c.Len() != 1 {
			t.Fatalf("expected 1 line, got %d", c.Len())
		}
		if c.Quantity(1) != 5 || c.ItemCount() != 5 {
			t.Errorf("expected quantity 5, got line=%d count=%d", c.Quantity(1), c.ItemCount())
		}
	})

	t.Run("Add clamps quantity", func(t *testing.T) {
		tt := []struct {
			name     string
			quantity int
			want     int
		}{
			{name: "zero", quantity: 0, want: 1},
			{name: "negative", quantity: -4, want: 1},
			{name: "positive", quantity: 3, want: 3},
		}

		for _, tc := range tt {
			t.Run(tc.name, func(t *testing.T) {
				c := New(nil)
				c.Add(movie(7, "1.00"), tc.quantity)
				if got := c.Quantity(7); got != tc.want {
					t.Errorf("Quantity() = %d, want %d", got, tc.want)
				}
			})
		}
	})

	t.Run("Remove", func(t *testing.T) {
		c := New(nil)
		c.Add(movie(1, "1.00"), 1)
		c.Add(movie(2, "2.00"), 1)

		removed, ok := c.Remove(1)
		if !ok || removed.Movie.ID != 1 {
			t.Errorf("Remove(1) = (%v, %v)", removed.Movie.ID, ok)
		}
		if c.Contains(1) || !c.Contains(2) {
			t.Error("Remove(1) removed the wrong line")
		}

		before := c.Items()
		if _, ok := c.Remove(42); ok {
			t.Error("Remove of an absent id should report false")
		}
		after := c.Items()
		if len(after) != len(before) || after[0].Movie.ID != before[0].Movie.ID || after[0].Quantity != before[0].Quantity {
			t.Errorf("Remove of an absent id changed the cart: %v -> %v", before, after)
		}
	})

	t.Run("Total", func(t *testing.T) {
		c := New(nil)
		if !c.Total().IsZero() {
			t.Errorf("empty cart total = %s", c.Total())
		}

		c.Add(movie(1, "19.99"), 1)
		c.Add(movie(2, "14.99"), 2)

		if got := c.Total(); !got.Equal(decimal.RequireFromString("49.97")) {
			t.Errorf("Total() = %s, want 49.97", got)
		}
		if c.ItemCount() != 3 {
			t.Errorf("ItemCount() = %d, want 3", c.ItemCount())
		}
	})

	t.Run("Clear", func(t *testing.T) {
		c := New(nil)
		c.Add(movie(1, "5.00"), 2)
		c.Clear()

		if !c.Empty() || c.ItemCount() != 0 || !c.Total().IsZero() {
			t.Errorf("cart should be empty after Clear, got %v", c.Items())
		}
		if items := c.Items(); items == nil {
			t.Error("Items() should never be nil")
		}
	})

	t.Run("Items returns a copy", func(t *testing.T) {
		c := New(nil)
		c.Add(movie(1, "5.00"), 1)

		items := c.Items()
		items[0].Quantity = 99
		if c.Quantity(1) != 1 {
			t.Error("mutating Items() result changed the cart")
		}
	})

	t.Run("New merges duplicate lines", func(t *testing.T) {
		c := New([]models.LineItem{
			{Movie: movie(1, "3.00"), Quantity: 1},
			{Movie: movie(2, "4.00"), Quantity: 0},
			{Movie: movie(1, "3.00"), Quantity: 2},
		})

		if c.Len() != 1 || c.Quantity(1) != 3 {
			t.Errorf("expected one line with quantity 3, got %v", c.Items())
		}
	})
}
