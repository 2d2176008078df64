package state

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/cinevault/internal/cart"
	"github.com/desertthunder/cinevault/internal/models"
	"github.com/desertthunder/cinevault/internal/notify"
	"github.com/shopspring/decimal"
)

// Cart persists a [cart.Cart] to the cart slot.
type Cart struct {
	mu       sync.Mutex
	core     *cart.Cart
	store    models.SlotStore
	notifier notify.Notifier
	logger   *log.Logger
}

// LoadCart restores the cart from store. A missing or unreadable slot yields an empty cart.
func LoadCart(ctx context.Context, store models.SlotStore, notifier notify.Notifier, logger *log.Logger) (*Cart, error) {
	logger = logger.WithPrefix("cart")

	lines, found, err := readSlot[[]models.LineItem](ctx, store, models.SlotCart, logger)
	if err != nil {
		return nil, err
	}
	if found {
		logger.Debug("restored cart", "lines", len(lines))
	}

	return &Cart{
		core:     cart.New(lines),
		store:    store,
		notifier: notifier,
		logger:   logger,
	}, nil
}

// Add puts quantity copies of movie in the cart and saves.
//
// The in-memory cart keeps the change when the save fails; the error is returned.
func (c *Cart) Add(ctx context.Context, movie models.Movie, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.core.Add(movie, quantity) {
		c.notifier.Success(fmt.Sprintf("Added \"%s\" to cart", movie.Title))
	} else {
		c.notifier.Success(fmt.Sprintf("Updated quantity for \"%s\" in cart", movie.Title))
	}
	c.logger.Debug("added to cart", "movie", movie.ID, "quantity", c.core.Quantity(movie.ID))

	return c.save(ctx)
}

// Remove deletes the line for movieID and saves. An absent id still saves the unchanged cart.
func (c *Cart) Remove(ctx context.Context, movieID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if removed, ok := c.core.Remove(movieID); ok {
		c.notifier.Success(fmt.Sprintf("Removed \"%s\" from cart", removed.Movie.Title))
		c.logger.Debug("removed from cart", "movie", movieID)
	}

	return c.save(ctx)
}

// Clear empties the cart and writes an explicit empty list.
func (c *Cart) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.core.Clear()
	c.notifier.Success("Cart cleared")
	return c.save(ctx)
}

// RemoveLines deletes the lines for movieIDs in one save without notifying.
//
// The slot is re-read first, so lines another process saved since this cart was loaded
// survive alongside lines added here after the ids were read.
func (c *Cart) RemoveLines(ctx context.Context, movieIDs ...int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines, found, err := readSlot[[]models.LineItem](ctx, c.store, models.SlotCart, c.logger)
	if err != nil {
		return err
	}
	if found {
		c.core = cart.New(lines)
	}

	for _, id := range movieIDs {
		c.core.Remove(id)
	}
	c.logger.Debug("removed purchased lines", "movies", movieIDs, "remaining", c.core.Len())
	return c.save(ctx)
}

// Total returns the sum of price × quantity.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.core.Total()
}

// ItemCount returns the sum of quantities.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.core.ItemCount()
}

// Contains reports whether movieID is in the cart.
func (c *Cart) Contains(movieID int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.core.Contains(movieID)
}

// Quantity returns the quantity for movieID, or 0.
func (c *Cart) Quantity(movieID int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.core.Quantity(movieID)
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []models.LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.core.Items()
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.core.Len()
}

// save must be called with mu held.
func (c *Cart) save(ctx context.Context) error {
	if err := writeSlot(ctx, c.store, models.SlotCart, c.core.Items()); err != nil {
		c.logger.Error("failed to save cart", "error", err)
		return err
	}
	return nil
}
