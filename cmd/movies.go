package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/cinevault/internal/app"
	"github.com/desertthunder/cinevault/internal/formatter"
	"github.com/desertthunder/cinevault/internal/models"
	"github.com/urfave/cli/v3"
)

// MoviesList prints the catalog filtered by --query and --genre.
func (r *Runner) MoviesList(ctx context.Context, cmd *cli.Command) error {
	return r.withApp(ctx, func(a *app.App) error {
		movies := a.Catalog.Search(cmd.String("query"), cmd.String("genre"))
		r.logger.Debug("listing movies", "count", len(movies))
		return r.writeMovies(cmd, a, "Catalog", movies)
	})
}

// MoviesFeatured prints the featured movies.
func (r *Runner) MoviesFeatured(ctx context.Context, cmd *cli.Command) error {
	return r.withApp(ctx, func(a *app.App) error {
		return r.writeMovies(cmd, a, "Featured", a.Catalog.Featured())
	})
}

// MoviesNew prints the newest releases.
func (r *Runner) MoviesNew(ctx context.Context, cmd *cli.Command) error {
	return r.withApp(ctx, func(a *app.App) error {
		return r.writeMovies(cmd, a, "New Releases", a.Catalog.Newest())
	})
}

// MoviesGenres prints every genre label in catalog order.
func (r *Runner) MoviesGenres(ctx context.Context, cmd *cli.Command) error {
	return r.withApp(ctx, func(a *app.App) error {
		for _, g := range a.Catalog.Genres() {
			if err := r.writePlain("%s\n", g); err != nil {
				return err
			}
		}
		return nil
	})
}

// MoviesShow prints one movie.
func (r *Runner) MoviesShow(ctx context.Context, cmd *cli.Command) error {
	id := cmd.IntArg("id")

	return r.withApp(ctx, func(a *app.App) error {
		movie, err := a.Movie(id)
		if err != nil {
			return err
		}

		if cmd.Bool("json") {
			return r.writeJSON(movie, cmd.Bool("pretty"))
		}

		r.writePlainHeader(fmt.Sprintf("%s (%d)", movie.Title, movie.Year()))
		r.writePlain("%s\n\n", movie.Overview)
		r.writePlain("Rating:   %.1f/10\n", movie.VoteAverage)
		r.writePlain("Runtime:  %s\n", formatter.FormatRuntime(movie.Runtime))
		r.writePlain("Genres:   %s\n", strings.Join(movie.Genres, ", "))
		r.writePlain("Director: %s\n", movie.Director)
		r.writePlain("Starring: %s\n", strings.Join(movie.Starring, ", "))
		r.writePlain("Price:    %s\n", formatter.FormatCurrency(movie.Price))

		switch {
		case a.Session.IsOwned(movie.ID):
			r.writePlain("\n✓ In your library\n")
		case a.Cart.Contains(movie.ID):
			r.writePlain("\nIn cart (%d)\n", a.Cart.Quantity(movie.ID))
		}
		return nil
	})
}

func (r *Runner) writeMovies(cmd *cli.Command, a *app.App, title string, movies []models.Movie) error {
	if cmd.Bool("json") {
		return r.writeJSON(movies, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("%s (%d)", title, len(movies)))
	if len(movies) == 0 {
		return r.writePlain("No movies found\n")
	}

	for _, m := range movies {
		mark := " "
		if a.Session.IsOwned(m.ID) {
			mark = "✓"
		}
		if err := r.writePlain("%s %3d  %-28s %d  %8s  %s\n",
			mark, m.ID, m.Title, m.Year(), formatter.FormatCurrency(m.Price), strings.Join(m.Genres, ", ")); err != nil {
			return err
		}
	}
	return nil
}
