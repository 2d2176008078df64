package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/cinevault/internal/app"
	"github.com/desertthunder/cinevault/internal/checkout"
	"github.com/desertthunder/cinevault/internal/formatter"
	"github.com/desertthunder/cinevault/internal/models"
	"github.com/desertthunder/cinevault/internal/shared"
	"github.com/urfave/cli/v3"
)

// CartAdd adds --quantity copies of a movie to the cart.
func (r *Runner) CartAdd(ctx context.Context, cmd *cli.Command) error {
	id := cmd.IntArg("id")
	if id == 0 {
		return fmt.Errorf("%w: movie id", shared.ErrMissingArgument)
	}

	return r.withApp(ctx, func(a *app.App) error {
		_, err := a.AddToCart(ctx, id, cmd.Int("quantity"))
		return err
	})
}

// CartRemove deletes a movie's line from the cart.
func (r *Runner) CartRemove(ctx context.Context, cmd *cli.Command) error {
	id := cmd.IntArg("id")
	if id == 0 {
		return fmt.Errorf("%w: movie id", shared.ErrMissingArgument)
	}

	return r.withApp(ctx, func(a *app.App) error {
		if !a.Cart.Contains(id) {
			r.logger.Debug("movie not in cart", "id", id)
			return r.writePlain("Movie %d is not in your cart\n", id)
		}
		return a.Cart.Remove(ctx, id)
	})
}

// CartClear empties the cart.
func (r *Runner) CartClear(ctx context.Context, cmd *cli.Command) error {
	return r.withApp(ctx, func(a *app.App) error {
		return a.Cart.Clear(ctx)
	})
}

type cartView struct {
	Lines   []models.LineItem `json:"lines"`
	Summary checkout.Summary  `json:"summary"`
}

// CartShow prints cart lines and the order summary.
func (r *Runner) CartShow(ctx context.Context, cmd *cli.Command) error {
	return r.withApp(ctx, func(a *app.App) error {
		lines := a.Cart.Items()
		summary := a.Checkout.Summary()

		if cmd.Bool("json") {
			return r.writeJSON(cartView{Lines: lines, Summary: summary}, cmd.Bool("pretty"))
		}

		r.writePlainHeader(fmt.Sprintf("Cart (%d items)", a.Cart.ItemCount()))
		_, err := r.output.Write(formatter.CartToText(lines, summary))
		return err
	})
}
