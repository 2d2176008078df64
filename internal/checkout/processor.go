package checkout

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/cinevault/internal/models"
	"github.com/desertthunder/cinevault/internal/notify"
	"github.com/desertthunder/cinevault/internal/shared"
	"github.com/desertthunder/cinevault/internal/state"
	"github.com/shopspring/decimal"
)

// Order is the confirmation returned by a completed checkout.
type Order struct {
	Number    string            `json:"number"`
	PlacedAt  time.Time         `json:"placed_at"`
	Customer  Contact           `json:"customer"`
	CardLast4 string            `json:"card_last4"`
	Lines     []models.LineItem `json:"lines"`
	Summary   Summary           `json:"summary"`
}

// Processor completes orders against the persisted cart and session.
type Processor struct {
	cart     *state.Cart
	session  *state.Session
	taxRate  decimal.Decimal
	delay    time.Duration
	notifier notify.Notifier
	logger   *log.Logger

	now         func() time.Time
	orderNumber func() string
}

// NewProcessor creates a Processor using the tax rate and processing delay from cfg.
func NewProcessor(cart *state.Cart, session *state.Session, cfg shared.CheckoutConfig, notifier notify.Notifier, logger *log.Logger) *Processor {
	return &Processor{
		cart:        cart,
		session:     session,
		taxRate:     cfg.Tax(),
		delay:       cfg.ProcessingDelay(),
		notifier:    notifier,
		logger:      logger.WithPrefix("checkout"),
		now:         time.Now,
		orderNumber: randomOrderNumber,
	}
}

// Summary prices the current cart.
func (p *Processor) Summary() Summary {
	return Summarize(p.cart.Items(), p.taxRate)
}

// Ready reports whether a checkout could start: a user is signed in and the cart has lines.
func (p *Processor) Ready() error {
	if !p.session.Authenticated() {
		return shared.ErrNotAuthenticated
	}
	if p.cart.Len() == 0 {
		return shared.ErrEmptyCart
	}
	return nil
}

// Complete validates the forms, simulates payment, records every line as purchased and
// removes those lines from the cart. Lines added while payment is processing are kept.
//
// Cancelling ctx during the processing delay abandons the order before anything is recorded.
// A failure while recording can leave some purchases saved with the cart untouched; purchases
// are idempotent, so calling Complete again is safe.
func (p *Processor) Complete(ctx context.Context, contact Contact, payment Payment, progress chan<- ProgressUpdate) (*Order, error) {
	sendUpdate(progress, validateUpdate())

	if err := p.Ready(); err != nil {
		switch {
		case errors.Is(err, shared.ErrNotAuthenticated):
			p.notifier.Error("Please login to continue checkout")
		case errors.Is(err, shared.ErrEmptyCart):
			p.notifier.Error("Your cart is empty")
		}
		return nil, err
	}

	for _, err := range []error{ValidateContact(contact), ValidatePayment(payment)} {
		if err == nil {
			continue
		}
		var verr *ValidationError
		if errors.As(err, &verr) {
			p.notifier.Error(verr.Message)
		}
		return nil, err
	}

	lines := p.cart.Items()
	summary := Summarize(lines, p.taxRate)

	sendUpdate(progress, processUpdate())
	p.logger.Debug("processing payment", "items", summary.Items, "total", summary.Total.StringFixed(2))
	if err := wait(ctx, p.delay); err != nil {
		return nil, err
	}

	ids := make([]int, len(lines))
	for i, l := range lines {
		sendUpdate(progress, recordUpdate(i+1, len(lines), l.Movie.Title))
		if err := p.session.RecordPurchase(ctx, l.Movie.ID); err != nil {
			return nil, fmt.Errorf("failed to record purchase of %d: %w", l.Movie.ID, err)
		}
		ids[i] = l.Movie.ID
	}

	if err := p.cart.RemoveLines(ctx, ids...); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	order := &Order{
		Number:    p.orderNumber(),
		PlacedAt:  p.now().UTC(),
		Customer:  Contact{FullName: contact.FullName, Email: contact.Email},
		CardLast4: payment.Last4(),
		Lines:     lines,
		Summary:   summary,
	}

	sendUpdate(progress, doneUpdate(order.Number))
	p.notifier.Success("Purchase complete! Your movies are now available in your library.")
	p.logger.Info("order placed", "number", order.Number, "items", summary.Items, "total", summary.Total.StringFixed(2))

	return order, nil
}

// randomOrderNumber returns "ORD-" followed by six digits.
func randomOrderNumber() string {
	return fmt.Sprintf("ORD-%06d", rand.IntN(1_000_000))
}

func wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
