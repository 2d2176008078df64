package main

import (
	"context"
	"sync"

	"github.com/desertthunder/cinevault/internal/app"
	"github.com/desertthunder/cinevault/internal/checkout"
	"github.com/desertthunder/cinevault/internal/formatter"
	"github.com/urfave/cli/v3"
)

// Checkout purchases the cart with the contact and card flags, printing progress as it goes.
// Contact fields default to the signed-in account.
func (r *Runner) Checkout(ctx context.Context, cmd *cli.Command) error {
	return r.withApp(ctx, func(a *app.App) error {
		contact := checkout.Contact{FullName: cmd.String("name"), Email: cmd.String("email")}
		if user, ok := a.Session.User(); ok {
			if contact.FullName == "" {
				contact.FullName = user.Name
			}
			if contact.Email == "" {
				contact.Email = user.Email
			}
		}

		payment := checkout.Payment{
			CardNumber: cmd.String("card"),
			CardName:   cmd.String("card-name"),
			Expiry:     cmd.String("expiry"),
			CVV:        cmd.String("cvv"),
		}
		if payment.CardName == "" {
			payment.CardName = contact.FullName
		}

		progress := make(chan checkout.ProgressUpdate, 16)
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			for update := range progress {
				if cmd.Bool("json") {
					r.logger.Info(update.Message, "phase", update.Phase)
					continue
				}
				r.writePlain("  %s\n", update.Message)
			}
		}()

		order, err := a.Checkout.Complete(ctx, contact, payment, progress)
		close(progress)
		wg.Wait()
		if err != nil {
			return err
		}

		if cmd.Bool("json") {
			return r.writeJSON(order, true)
		}

		r.writePlainln("")
		_, err = r.output.Write(formatter.OrderReceipt(order))
		return err
	})
}
