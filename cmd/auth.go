package main

import (
	"context"

	"github.com/desertthunder/cinevault/internal/app"
	"github.com/desertthunder/cinevault/internal/formatter"
	"github.com/desertthunder/cinevault/internal/models"
	"github.com/urfave/cli/v3"
)

// AuthLogin signs in with --email and --password after the simulated delay.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	return r.withApp(ctx, func(a *app.App) error {
		r.logger.Info("signing in", "email", cmd.String("email"))

		user, err := a.Session.Login(ctx, cmd.String("email"), cmd.String("password"))
		if err != nil {
			return err
		}

		r.logger.Debug("signed in", "id", user.ID)
		return nil
	})
}

// AuthRegister creates a mock account and signs in.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	return r.withApp(ctx, func(a *app.App) error {
		_, err := a.Session.Register(ctx, cmd.String("name"), cmd.String("email"), cmd.String("password"))
		return err
	})
}

// AuthLogout signs out, keeping purchases.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	return r.withApp(ctx, func(a *app.App) error {
		if !a.Session.Authenticated() {
			return r.writePlain("Not signed in\n")
		}
		return a.Session.Logout(ctx)
	})
}

type statusView struct {
	Authenticated bool         `json:"authenticated"`
	User          *models.User `json:"user,omitempty"`
	Owned         int          `json:"owned"`
	CartItems     int          `json:"cartItems"`
}

// AuthStatus prints the signed-in user along with cart and library counts.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	return r.withApp(ctx, func(a *app.App) error {
		status := statusView{
			Owned:     len(a.Session.Purchases()),
			CartItems: a.Cart.ItemCount(),
		}
		if user, ok := a.Session.User(); ok {
			status.Authenticated = true
			status.User = &user
		}

		if cmd.Bool("json") {
			return r.writeJSON(status, cmd.Bool("pretty"))
		}

		if status.Authenticated {
			r.writePlain("✓ Signed in as %s <%s>\n", status.User.Name, status.User.Email)
		} else {
			r.writePlain("✗ Not signed in\n")
		}
		r.writePlain("Library: %d movies\n", status.Owned)
		return r.writePlain("Cart:    %d items (%s)\n", status.CartItems, formatter.FormatCurrency(a.Cart.Total()))
	})
}
