// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func jsonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print output",
			Value: true,
		},
	}
}

func filterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "query",
			Aliases: []string{"q"},
			Usage:   "Case-insensitive title search",
		},
		&cli.StringFlag{
			Name:    "genre",
			Aliases: []string{"g"},
			Usage:   "Only show movies in this genre (\"all\" for any)",
		},
	}
}

// setupCommand handles profile initialization.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create a config file and initialize the slot storage",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   defaultConfigPath,
			},
			&cli.BoolFlag{
				Name:  "rollback",
				Usage: "Roll back the most recent migration (sqlite only)",
			},
		},
		Action: r.Setup,
	}
}

// moviesCommand handles catalog browsing.
func moviesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "movies",
		Aliases: []string{"m"},
		Usage:   "Browse the movie catalog",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List every movie, optionally filtered",
				Flags:  append(filterFlags(), jsonFlags()...),
				Action: r.MoviesList,
			},
			{
				Name:   "featured",
				Usage:  "Show the featured movies",
				Flags:  jsonFlags(),
				Action: r.MoviesFeatured,
			},
			{
				Name:   "new",
				Usage:  "Show the newest releases",
				Flags:  jsonFlags(),
				Action: r.MoviesNew,
			},
			{
				Name:  "show",
				Usage: "Show details for one movie",
				Arguments: []cli.Argument{
					&cli.IntArg{Name: "id"},
				},
				Flags:  jsonFlags(),
				Action: r.MoviesShow,
			},
			{
				Name:   "genres",
				Usage:  "List the genres in the catalog",
				Action: r.MoviesGenres,
			},
		},
	}
}

// cartCommand handles cart operations.
func cartCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cart",
		Usage: "Manage the shopping cart",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Add a movie to the cart",
				Arguments: []cli.Argument{
					&cli.IntArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "quantity",
						Aliases: []string{"n"},
						Usage:   "Number of copies to add",
						Value:   1,
					},
				},
				Action: r.CartAdd,
			},
			{
				Name:  "remove",
				Usage: "Remove a movie from the cart",
				Arguments: []cli.Argument{
					&cli.IntArg{Name: "id"},
				},
				Action: r.CartRemove,
			},
			{
				Name:   "clear",
				Usage:  "Remove every line from the cart",
				Action: r.CartClear,
			},
			{
				Name:   "show",
				Usage:  "Show cart lines and totals",
				Flags:  jsonFlags(),
				Action: r.CartShow,
			},
		},
	}
}

// authCommand handles the mock account session.
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage the local account session",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Sign in (demo account: user@example.com / password)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Usage: "Account email"},
					&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "Account password"},
				},
				Action: r.AuthLogin,
			},
			{
				Name:  "register",
				Usage: "Create an account and sign in",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "Display name"},
					&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Usage: "Account email"},
					&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "Account password"},
				},
				Action: r.AuthRegister,
			},
			{
				Name:   "logout",
				Usage:  "Sign out; purchases are kept",
				Action: r.AuthLogout,
			},
			{
				Name:   "status",
				Usage:  "Show the signed-in user",
				Flags:  jsonFlags(),
				Action: r.AuthStatus,
			},
		},
	}
}

// checkoutCommand places an order for the cart contents.
func checkoutCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "checkout",
		Usage: "Purchase everything in the cart",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Usage: "Full name (defaults to the account name)"},
			&cli.StringFlag{Name: "email", Usage: "Contact email (defaults to the account email)"},
			&cli.StringFlag{Name: "card", Usage: "Card number", Required: true},
			&cli.StringFlag{Name: "card-name", Usage: "Name on card (defaults to the full name)"},
			&cli.StringFlag{Name: "expiry", Usage: "Card expiry as MM/YY", Required: true},
			&cli.StringFlag{Name: "cvv", Usage: "Card security code", Required: true},
			&cli.BoolFlag{Name: "json", Usage: "Output the order as JSON"},
		},
		Action: r.Checkout,
	}
}

// libraryCommand handles purchased movies.
func libraryCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "library",
		Aliases: []string{"lib"},
		Usage:   "Browse and export your purchased movies",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List purchased movies",
				Flags:  append(filterFlags(), jsonFlags()...),
				Action: r.LibraryList,
			},
			{
				Name:  "play",
				Usage: "Show the trailer link for an owned movie",
				Arguments: []cli.Argument{
					&cli.IntArg{Name: "id"},
				},
				Action: r.LibraryPlay,
			},
			{
				Name:  "export",
				Usage: "Export the library as csv, md or txt",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format: csv, md or txt",
						Value:   "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file base path (csv, txt) or directory (md)",
						Value:   "my-movies",
					},
					&cli.BoolFlag{
						Name:  "posters",
						Usage: "Download poster images with the markdown export",
					},
				},
				Action: r.LibraryExport,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive storefront",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Where to write logs while the TUI owns the terminal",
				Value: "./tmp/cinevault-tui.log",
			},
		},
		Action: r.TUI,
	}
}
