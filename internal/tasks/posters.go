package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/desertthunder/cinevault/internal/formatter"
	"github.com/desertthunder/cinevault/internal/library"
	"golang.org/x/time/rate"
)

// PosterDir is the subdirectory of an export that holds poster images.
const PosterDir = "posters"

// PosterOpts contains configuration for poster downloads.
type PosterOpts struct {
	OutputDir  string                                                // Export directory; posters land in OutputDir/posters
	NumWorkers int                                                   // Concurrent downloads (default: 4, max: 8)
	RateLimit  float64                                               // Requests per second (default: 5)
	Fetch      func(ctx context.Context, url string) ([]byte, error) // Defaults to formatter.DownloadImage
}

// PosterFailure records a poster that could not be saved.
type PosterFailure struct {
	MovieID int
	Title   string
	Err     error
}

// PosterResult summarizes a [FetchPosters] run.
type PosterResult struct {
	Saved  map[int]string // Movie id to path relative to OutputDir
	Files  []string       // Written poster files, sorted
	Failed []PosterFailure
}

type posterJob struct {
	entry library.Entry
}

type posterOutcome struct {
	entry library.Entry
	file  string
	err   error
}

// FetchPosters downloads every entry's poster into opts.OutputDir/posters using a rate limited worker pool.
//
// Individual failures are reported in the result; only a filesystem error or a cancelled ctx fails the call.
func FetchPosters(ctx context.Context, prog chan<- ProgressUpdate, entries []library.Entry, opts PosterOpts) (*PosterResult, error) {
	if opts.OutputDir == "" {
		opts.OutputDir = "library"
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 4
	}
	if opts.NumWorkers > 8 {
		opts.NumWorkers = 8
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 5.0
	}
	if opts.Fetch == nil {
		opts.Fetch = formatter.DownloadImage
	}

	dir := filepath.Join(opts.OutputDir, PosterDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create poster directory: %w", err)
	}

	result := &PosterResult{Saved: make(map[int]string, len(entries))}
	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)

	jobs := make(chan posterJob, len(entries))
	outcomes := make(chan posterOutcome, len(entries))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go posterWorker(ctx, &wg, limiter, dir, jobs, outcomes, opts)
	}

	sendProgress(prog, queueUpdate(len(entries)))
	for _, e := range entries {
		jobs <- posterJob{entry: e}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	completed := 0
	for out := range outcomes {
		completed++
		if out.err != nil {
			result.Failed = append(result.Failed, PosterFailure{MovieID: out.entry.Movie.ID, Title: out.entry.Movie.Title, Err: out.err})
			sendProgress(prog, failedUpdate(completed, len(entries), out.entry.Movie.Title, out.err))
			continue
		}

		result.Saved[out.entry.Movie.ID] = filepath.ToSlash(filepath.Join(PosterDir, filepath.Base(out.file)))
		result.Files = append(result.Files, out.file)
		sendProgress(prog, savedUpdate(completed, len(entries), out.entry.Movie.Title))
	}

	sort.Strings(result.Files)
	sort.Slice(result.Failed, func(i, j int) bool { return result.Failed[i].MovieID < result.Failed[j].MovieID })

	if err := ctx.Err(); err != nil {
		return result, err
	}

	sendProgress(prog, doneUpdate(len(result.Saved), len(entries)))
	return result, nil
}

// posterWorker downloads posters from the jobs channel until it is drained or ctx ends.
func posterWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	limiter *rate.Limiter,
	dir string,
	jobs <-chan posterJob,
	outcomes chan<- posterOutcome,
	opts PosterOpts,
) {
	defer wg.Done()

	for job := range jobs {
		if err := limiter.Wait(ctx); err != nil {
			outcomes <- posterOutcome{entry: job.entry, err: err}
			continue
		}
		outcomes <- savePoster(ctx, dir, job.entry, opts.Fetch)
	}
}

func savePoster(ctx context.Context, dir string, e library.Entry, fetch func(context.Context, string) ([]byte, error)) posterOutcome {
	out := posterOutcome{entry: e}

	data, err := fetch(ctx, e.Movie.PosterPath)
	if err != nil {
		out.err = err
		return out
	}

	path := filepath.Join(dir, fmt.Sprintf("%d.jpg", e.Movie.ID))
	if err := os.WriteFile(path, data, 0644); err != nil {
		out.err = fmt.Errorf("failed to save poster: %w", err)
		return out
	}

	out.file = path
	return out
}
