package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMovie(t *testing.T) {
	t.Run("Released", func(t *testing.T) {
		m := Movie{ReleaseDate: "2024-03-01"}
		if got := m.Released(); got.Year() != 2024 || got.Month() != 3 || got.Day() != 1 {
			t.Errorf("Released() = %v, want 2024-03-01", got)
		}
		if m.Year() != 2024 {
			t.Errorf("Year() = %d, want 2024", m.Year())
		}
	})

	t.Run("Released malformed", func(t *testing.T) {
		m := Movie{ReleaseDate: "March 2024"}
		if !m.Released().IsZero() {
			t.Errorf("expected zero time for malformed date, got %v", m.Released())
		}
		if m.Year() != 0 {
			t.Errorf("expected year 0 for malformed date, got %d", m.Year())
		}
	})
}

func TestLineItemSubtotal(t *testing.T) {
	item := LineItem{Movie: Movie{Price: decimal.RequireFromString("14.99")}, Quantity: 3}
	if got := item.Subtotal().String(); got != "44.97" {
		t.Errorf("Subtotal() = %s, want 44.97", got)
	}
}
