package main

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/desertthunder/cinevault/internal/app"
	"github.com/desertthunder/cinevault/internal/formatter"
	"github.com/desertthunder/cinevault/internal/library"
	"github.com/desertthunder/cinevault/internal/shared"
	"github.com/desertthunder/cinevault/internal/tasks"
	"github.com/urfave/cli/v3"
)

const trailerURL = "https://www.youtube.com/watch?v="

// LibraryList prints owned movies filtered by --query and --genre.
func (r *Runner) LibraryList(ctx context.Context, cmd *cli.Command) error {
	return r.withApp(ctx, func(a *app.App) error {
		lib, err := a.Library()
		if err != nil {
			return err
		}

		entries := lib.Filter(cmd.String("query"), cmd.String("genre"))
		if cmd.Bool("json") {
			return r.writeJSON(entries, cmd.Bool("pretty"))
		}

		r.writePlainHeader(fmt.Sprintf("My Movies (%d)", len(entries)))
		if lib.Len() == 0 {
			return r.writePlain("You haven't purchased any movies yet\n")
		}
		if len(entries) == 0 {
			return r.writePlain("No movies match your filters\n")
		}

		for _, e := range entries {
			if err := r.writePlain("%3d  %-28s %d  %-8s purchased %s\n",
				e.Movie.ID, e.Movie.Title, e.Movie.Year(), formatter.FormatRuntime(e.Movie.Runtime), formatter.FormatDate(e.PurchasedAt)); err != nil {
				return err
			}
		}
		return r.writePlainln("Genres: %s", strings.Join(lib.Genres(), ", "))
	})
}

// LibraryPlay prints the trailer link for an owned movie.
func (r *Runner) LibraryPlay(ctx context.Context, cmd *cli.Command) error {
	id := cmd.IntArg("id")
	if id == 0 {
		return fmt.Errorf("%w: movie id", shared.ErrMissingArgument)
	}

	return r.withApp(ctx, func(a *app.App) error {
		lib, err := a.Library()
		if err != nil {
			return err
		}

		entry, err := lib.Play(id)
		if err != nil {
			return err
		}

		if entry.Movie.TrailerKey == "" {
			return r.writePlain("No trailer available for %s\n", entry.Movie.Title)
		}
		return r.writePlain("▶ %s\n%s%s\n", entry.Movie.Title, trailerURL, entry.Movie.TrailerKey)
	})
}

// LibraryExport writes the library in the --format requested.
func (r *Runner) LibraryExport(ctx context.Context, cmd *cli.Command) error {
	format := strings.ToLower(cmd.String("format"))
	output := cmd.String("output")

	return r.withApp(ctx, func(a *app.App) error {
		lib, err := a.Library()
		if err != nil {
			return err
		}

		var owner string
		if user, ok := a.Session.User(); ok {
			owner = user.Name
		}

		r.logger.Info("exporting library", "format", format, "titles", lib.Len())

		switch format {
		case "csv":
			result, err := formatter.WriteCSVExport(owner, lib, output)
			if err != nil {
				return err
			}
			r.writePlain("✓ Exported %d movies\n", lib.Len())
			r.writePlain("  %s\n  %s\n", result.LibraryFile, result.MetadataFile)
		case "md", "markdown":
			var posters map[int]string
			if cmd.Bool("posters") {
				if posters, err = r.fetchPosters(ctx, a, lib, output); err != nil {
					return err
				}
			}

			result, err := formatter.WriteMarkdownExport(owner, lib, output, posters)
			if err != nil {
				return err
			}
			r.writePlain("✓ Exported %d movies to %s (%d posters)\n", lib.Len(), result.Directory, len(result.Posters))
		case "txt", "text":
			path := output
			if !strings.HasSuffix(path, ".txt") {
				path += ".txt"
			}
			written, err := formatter.WriteTextExport(lib, path)
			if err != nil {
				return err
			}
			r.writePlain("✓ Exported %d movies to %s\n", lib.Len(), written)
		default:
			return fmt.Errorf("%w: unknown export format %q (want csv, md or txt)", shared.ErrInvalidArgument, format)
		}
		return nil
	})
}

// fetchPosters downloads posters into dir while printing progress, returning the saved paths.
func (r *Runner) fetchPosters(ctx context.Context, a *app.App, lib *library.Library, dir string) (map[int]string, error) {
	progress := make(chan tasks.ProgressUpdate, 16)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for update := range progress {
			r.writePlain("  %s\n", update.Message)
		}
	}()

	result, err := tasks.FetchPosters(ctx, progress, lib.Entries(), tasks.PosterOpts{
		OutputDir:  dir,
		NumWorkers: a.Config.Export.PosterWorkers,
		RateLimit:  a.Config.Export.PosterRate,
	})
	close(progress)
	wg.Wait()
	if err != nil {
		return nil, fmt.Errorf("failed to download posters: %w", err)
	}

	for _, f := range result.Failed {
		r.logger.Warn("poster download failed", "movie", f.MovieID, "title", f.Title, "error", f.Err)
	}
	return result.Saved, nil
}
