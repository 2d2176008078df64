// Package cart implements the shopping cart as a plain in-memory value.
//
// A [Cart] knows nothing about persistence or notifications; the state
// package wraps it with both. It is not safe for concurrent use.
package cart

import (
	"slices"

	"github.com/desertthunder/cinevault/internal/models"
	"github.com/shopspring/decimal"
)

// Cart is an ordered list of line items with at most one line per movie id.
type Cart struct {
	lines []models.LineItem
}

// New creates a cart holding lines. Lines are merged by movie id and
// non-positive quantities are dropped, so a hand-edited snapshot still
// satisfies the one-line-per-movie rule.
func New(lines []models.LineItem) *Cart {
	c := &Cart{}
	for _, l := range lines {
		if l.Quantity < 1 {
			continue
		}
		c.Add(l.Movie, l.Quantity)
	}
	return c
}

// Add puts quantity copies of movie in the cart and reports whether a new line was created.
// A quantity below 1 counts as 1.
func (c *Cart) Add(movie models.Movie, quantity int) bool {
	if quantity < 1 {
		quantity = 1
	}

	if i := c.index(movie.ID); i >= 0 {
		c.lines[i].Quantity += quantity
		return false
	}

	c.lines = append(c.lines, models.LineItem{Movie: movie, Quantity: quantity})
	return true
}

// Remove deletes the line for movieID and returns it. ok is false when no line matched.
func (c *Cart) Remove(movieID int) (removed models.LineItem, ok bool) {
	i := c.index(movieID)
	if i < 0 {
		return models.LineItem{}, false
	}

	removed = c.lines[i]
	c.lines = slices.Delete(c.lines, i, i+1)
	return removed, true
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Total returns the sum of price × quantity over every line.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// ItemCount returns the sum of quantities.
func (c *Cart) ItemCount() int {
	count := 0
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// Contains reports whether movieID has a line.
func (c *Cart) Contains(movieID int) bool {
	return c.index(movieID) >= 0
}

// Quantity returns the quantity for movieID, or 0.
func (c *Cart) Quantity(movieID int) int {
	if i := c.index(movieID); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

// Items returns a copy of the lines in insertion order. The result is never nil.
func (c *Cart) Items() []models.LineItem {
	items := make([]models.LineItem, len(c.lines))
	copy(items, c.lines)
	return items
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

func (c *Cart) index(movieID int) int {
	return slices.IndexFunc(c.lines, func(l models.LineItem) bool {
		return l.Movie.ID == movieID
	})
}
