package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/cinevault/internal/app"
	"github.com/desertthunder/cinevault/internal/models"
	"github.com/desertthunder/cinevault/internal/notify"
	"github.com/desertthunder/cinevault/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	logger     *log.Logger
	output     io.Writer
	store      models.SlotStore
	notes      *notify.Recorder
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Logger     *log.Logger
	Output     io.Writer
	// Store replaces the configured slot backend. The runner never closes it.
	Store models.SlotStore
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		logger:     opts.Logger,
		output:     opts.Output,
		store:      opts.Store,
		notes:      notify.NewRecorder(),
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, moviesCommand, cartCommand, authCommand, checkoutCommand, libraryCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// SetLogger replaces the runner's logger.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

// openApp builds the application context for one command.
func (r *Runner) openApp(ctx context.Context, notifier notify.Notifier) (*app.App, error) {
	opts := app.Options{Notifier: notifier}
	if r.store != nil {
		opts.Store = nopCloser{r.store}
	}

	a, err := app.New(ctx, r.config, r.logger, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}
	return a, nil
}

// withApp opens the profile, runs fn and prints the notifications it produced.
func (r *Runner) withApp(ctx context.Context, fn func(*app.App) error) error {
	a, err := r.openApp(ctx, notify.Multi{r.notes, notify.NewLog(shared.WithLogger(r.logger, "source", "cli"))})
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			r.logger.Warn("failed to close profile", "error", err)
		}
	}()

	runErr := fn(a)
	if err := r.flushNotes(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// flushNotes writes pending notifications to the output as status lines.
func (r *Runner) flushNotes() error {
	for _, msg := range r.notes.Drain() {
		mark := "✓"
		if msg.Level == notify.Error {
			mark = "✗"
		}
		if err := r.writePlain("%s %s\n", mark, msg.Text); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}

// nopCloser keeps an injected store open across commands.
type nopCloser struct {
	models.SlotStore
}

func (nopCloser) Close() error { return nil }
